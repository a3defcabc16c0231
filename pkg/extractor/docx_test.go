package extractor

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docxBody = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
    <w:p></w:p>
  </w:body>
</w:document>`

func writeDocx(t *testing.T, dir, name, documentXML string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	entry, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = entry.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return path
}

func TestExtractDocx(t *testing.T) {
	path := writeDocx(t, t.TempDir(), "report.docx", docxBody)

	blocks, err := Extract(path)
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	assert.Equal(t, "First paragraph.\nSecond paragraph.", blocks[0].Text)
	assert.Equal(t, "report.docx", blocks[0].Meta.Source)
	assert.Equal(t, 1, blocks[0].Meta.Page)
	assert.Equal(t, MethodDocx, blocks[0].Meta.Method)
}

func TestExtractDocxWithoutDocumentXML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.docx")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = Extract(path)
	assert.Error(t, err)
}

func TestExtractDocxCorruptArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))

	_, err := Extract(path)
	assert.Error(t, err)
}
