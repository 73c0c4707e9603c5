package main

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"golang.org/x/term"
)

// A buffered pager in the spirit of more(1). Commands write into it;
// flush pages the output a screenful at a time if stdin is a terminal,
// or passes everything through if it isn't.
type pager struct {
	fd         int
	r          *bufio.Reader
	w          io.Writer
	buf        bytes.Buffer
	shouldPage bool
}

var _ io.Writer = &pager{}

func newPager(r io.Reader, w io.Writer) *pager {
	shouldPage := false
	fd := -1

	f, ok := r.(interface{ Fd() uintptr }) // usually *os.File
	if ok {
		fd = int(f.Fd())
		shouldPage = term.IsTerminal(fd)
	}

	return &pager{
		fd:         fd,
		r:          bufio.NewReader(r),
		w:          w,
		shouldPage: shouldPage,
	}
}

func (p *pager) Write(b []byte) (int, error) {
	return p.buf.Write(b)
}

func (p *pager) flush() error {
	if !p.shouldPage {
		_, err := io.Copy(p.w, &p.buf)
		return err
	}

	_, height, err := term.GetSize(p.fd)
	if err != nil {
		_, err := io.Copy(p.w, &p.buf)
		return err
	}

	line := 0
	for {
		// height-1 leaves room for the --More-- prompt.
		if line >= height-1 {
			cont, err := p.more()
			if err != nil || !cont {
				return err
			}
			line = 0
		}

		s, err := p.buf.ReadString('\n')
		if s != "" {
			if _, werr := io.WriteString(p.w, s); werr != nil {
				return werr
			}
			line++
		}

		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
	}
}

// more blocks for a keypress: q stops, anything else continues with
// the next screenful.
func (p *pager) more() (bool, error) {
	prompt := "--More--"
	clear := "\r" + strings.Repeat(" ", len(prompt)) + "\r"

	oldState, err := term.MakeRaw(p.fd)
	if err != nil {
		return true, nil
	}
	defer term.Restore(p.fd, oldState)

	if _, err := io.WriteString(p.w, prompt); err != nil {
		return false, err
	}

	b, err := p.r.ReadByte()
	if err != nil {
		return false, err
	}

	if _, err := io.WriteString(p.w, clear); err != nil {
		return false, err
	}

	switch b {
	case 'q':
		return false, nil
	default:
		return true, nil
	}
}
