// Package render assembles [schema.Metadata] with its formatted fields into
// one of the output encodings and writes it as a self-contained unit.
package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/inodeinfo/internal/format"
	"github.com/desertwitch/inodeinfo/internal/schema"
)

var labelStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#7D56F4"))

// Renderer writes rendered [schema.Metadata] to an [io.Writer]. Every call of
// [Renderer.Render] results in exactly one write of one complete unit.
type Renderer struct {
	w    io.Writer
	opts schema.RenderOptions
}

// NewRenderer returns a pointer to a new [Renderer].
func NewRenderer(w io.Writer, opts schema.RenderOptions) *Renderer {
	return &Renderer{
		w:    w,
		opts: opts,
	}
}

// Render encodes the [schema.Metadata] and writes it to the underlying writer.
func (r *Renderer) Render(m *schema.Metadata) error {
	var buf bytes.Buffer

	doc := newDocument(m, r.opts.HumanReadable)

	var err error
	switch r.opts.Encoding {
	case schema.EncodingJSON:
		err = encodeJSON(&buf, doc)
	case schema.EncodingYAML:
		err = encodeYAML(&buf, doc)
	default:
		encodeText(&buf, doc, r.opts.Color)
	}
	if err != nil {
		return fmt.Errorf("(render) failed to encode %s as %s: %w", m.Path, r.opts.Encoding, err)
	}

	if _, err := r.w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("(render) failed to write %s: %w", m.Path, err)
	}

	return nil
}

type document struct {
	FilePath string        `json:"filePath" yaml:"filePath"`
	Inode    inodeDocument `json:"inode"    yaml:"inode"`
}

type inodeDocument struct {
	Number           uint64 `json:"number"           yaml:"number"`
	Type             string `json:"type"             yaml:"type"`
	Permissions      string `json:"permissions"      yaml:"permissions"`
	LinkCount        uint64 `json:"linkCount"        yaml:"linkCount"`
	UID              uint32 `json:"uid"              yaml:"uid"`
	GID              uint32 `json:"gid"              yaml:"gid"`
	Size             string `json:"size"             yaml:"size"`
	AccessTime       string `json:"accessTime"       yaml:"accessTime"`
	ModificationTime string `json:"modificationTime" yaml:"modificationTime"`
	StatusChangeTime string `json:"statusChangeTime" yaml:"statusChangeTime"`
}

func newDocument(m *schema.Metadata, human bool) document {
	return document{
		FilePath: m.Path,
		Inode: inodeDocument{
			Number:           m.Inode,
			Type:             format.TypeLabel(m.Type),
			Permissions:      format.Permissions(m.Type, m.Perms),
			LinkCount:        m.Links,
			UID:              m.UID,
			GID:              m.GID,
			Size:             format.Size(m.Size, human),
			AccessTime:       format.Time(m.AccessedAt, human),
			ModificationTime: format.Time(m.ModifiedAt, human),
			StatusChangeTime: format.Time(m.ChangedAt, human),
		},
	}
}
