package extract_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"jobforge-backend/pkg/extract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainTextPassthrough(t *testing.T) {
	text, err := extract.Text([]byte("plain resume text"), "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "plain resume text", text)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := extract.Text([]byte("x"), "resume.rtf")
	assert.ErrorIs(t, err, extract.ErrUnsupportedFormat)
}

func TestDocxExtraction(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Senior Go Engineer</w:t></w:r></w:p>
    <w:p><w:r><w:t>5 years experience</w:t></w:r></w:p>
  </w:body>
</w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	text, err := extract.Text(buf.Bytes(), "resume.docx")
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "5 years experience")
}

func TestCorruptDocx(t *testing.T) {
	_, err := extract.Text([]byte("not a zip"), "resume.docx")
	assert.Error(t, err)
}
