package models

// MIME types understood in clipboard payloads.
const (
	MIMEHTML     = "text/html"
	MIMEText     = "text/plain"
	MIMEWorkbook = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Payload is clipboard content keyed by MIME type.
type Payload map[string]string

// Get returns the content stored for mime, if any.
func (p Payload) Get(mime string) (string, bool) {
	v, ok := p[mime]
	return v, ok
}

// Types lists the MIME types present in the payload.
func (p Payload) Types() []string {
	types := make([]string, 0, len(p))
	for _, mime := range []string{MIMEHTML, MIMEWorkbook, MIMEText} {
		if _, ok := p[mime]; ok {
			types = append(types, mime)
		}
	}
	return types
}
