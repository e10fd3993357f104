package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type pdfcpuAssembler struct {
	conf *model.Configuration
}

// NewAssembler creates the production PDF assembler.
func NewAssembler() Assembler {
	return &pdfcpuAssembler{conf: model.NewDefaultConfiguration()}
}

func (a *pdfcpuAssembler) Load(data []byte) (Source, error) {
	pdfContext, err := api.ReadValidateAndOptimize(bytes.NewReader(data), a.conf)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return &pdfcpuSource{ctx: pdfContext}, nil
}

func (a *pdfcpuAssembler) Merge(pages [][]byte) ([]byte, error) {
	readers := make([]io.ReadSeeker, len(pages))
	for i, page := range pages {
		readers[i] = bytes.NewReader(page)
	}

	var out bytes.Buffer
	if err := api.MergeRaw(readers, &out, false, a.conf); err != nil {
		return nil, fmt.Errorf("merge pages: %w", err)
	}
	return out.Bytes(), nil
}

type pdfcpuSource struct {
	ctx *model.Context
}

func (s *pdfcpuSource) ExtractPage(index int) ([]byte, error) {
	if index < 0 || index >= s.ctx.PageCount {
		return nil, fmt.Errorf("page index %d out of range", index)
	}

	reader, err := api.ExtractPage(s.ctx, index+1)
	if err != nil {
		return nil, fmt.Errorf("extract page %d: %w", index, err)
	}
	return io.ReadAll(reader)
}
