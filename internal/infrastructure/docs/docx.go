package docs

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// extractDOCX lee word/document.xml del contenedor zip y concatena los nodos
// de texto (w:t), insertando un salto de línea por párrafo (w:p) para que el
// heurístico de nombre vea las mismas líneas que el documento.
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("abrir docx: %w", err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("abrir document.xml: %w", err)
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("leer document.xml: %w", err)
		}
		break
	}
	if docXML == nil {
		return "", fmt.Errorf("docx sin word/document.xml")
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(docXML); err != nil {
		return "", fmt.Errorf("parsear document.xml: %w", err)
	}

	var sb strings.Builder
	root := doc.Root()
	if root == nil {
		return "", nil
	}
	walkDocx(root, &sb)
	return sb.String(), nil
}

func walkDocx(el *etree.Element, sb *strings.Builder) {
	switch el.Tag {
	case "t":
		sb.WriteString(el.Text())
	case "tab":
		sb.WriteByte('\t')
	case "br":
		sb.WriteByte('\n')
	}
	for _, child := range el.ChildElements() {
		walkDocx(child, sb)
	}
	if el.Tag == "p" {
		sb.WriteByte('\n')
	}
}
