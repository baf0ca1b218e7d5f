package extractor

import "io"

// TextExtractor handles plain text files. The text already carries the
// newline structure the analyzer works on, so it passes through unchanged.
type TextExtractor struct{}

func (e *TextExtractor) Extract(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
