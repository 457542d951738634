package importer

import (
	"bufio"
	"bytes"
	"io"
)

type sniffer struct {
	*bufio.Reader
}

func newSniffer(r io.Reader) sniffer {
	return sniffer{bufio.NewReader(r)}
}

// isXML reports whether the first non-space bytes open an XML document.
func (s sniffer) isXML() bool {
	head, _ := s.Peek(512)
	head = bytes.TrimPrefix(head, []byte("\xef\xbb\xbf"))
	return bytes.HasPrefix(bytes.TrimLeft(head, " \t\r\n"), []byte("<"))
}
