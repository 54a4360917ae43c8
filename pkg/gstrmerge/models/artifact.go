package models

// Artifact is the serialized merge output handed back to the caller.
type Artifact struct {
	// Filename is the suggested download name.
	Filename string `json:"filename"`
	// MIMEType is the content type of Data.
	MIMEType string `json:"mime_type"`
	// Data is the workbook or archive content.
	Data []byte `json:"data"`
}
