package storage

import "property-formatter/models"

// RecordWriter is the interface any export backend must satisfy.
type RecordWriter interface {
	Write(outputs []models.FormattedOutput) error
	Close() error
}

// TextWriter hands rendered text to a collaborator such as the clipboard.
type TextWriter interface {
	WriteText(text string) error
}
