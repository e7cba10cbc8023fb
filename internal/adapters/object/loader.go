// Package object provides default collaborators for parsing built
// artifacts and comparing a loaded pair. The engine only ever sees the
// ports; an instruction-level diff engine can be swapped in behind them.
package object

import (
	"debug/elf"
	"errors"

	"github.com/cespare/xxhash/v2"
	"github.com/objdelta/objdelta/internal/core/domain"
	"github.com/objdelta/objdelta/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ObjectLoader = (*ELFLoader)(nil)

// ELFLoader parses relocatable ELF objects into domain.Objects.
type ELFLoader struct{}

// NewELFLoader creates a new ELF object loader.
func NewELFLoader() *ELFLoader {
	return &ELFLoader{}
}

// Load parses the object file at path. Structurally invalid input fails
// with a load error.
func (l *ELFLoader) Load(path string) (*domain.Object, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrObjectLoad.Error()), "path", path)
	}
	defer f.Close()

	syms, err := f.Symbols()
	if err != nil && !errors.Is(err, elf.ErrNoSymbols) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrObjectLoad.Error()), "path", path)
	}

	obj := &domain.Object{
		Path: path,
		Arch: f.Machine.String(),
	}

	// Section data is read lazily and cached per section index.
	sectionData := make(map[elf.SectionIndex][]byte)

	for _, sym := range syms {
		symType := elf.ST_TYPE(sym.Info)
		if symType != elf.STT_FUNC && symType != elf.STT_OBJECT {
			continue
		}
		if sym.Section == elf.SHN_UNDEF || sym.Section >= elf.SHN_LORESERVE {
			continue
		}
		if int(sym.Section) >= len(f.Sections) {
			continue
		}

		section := f.Sections[sym.Section]
		data, ok := sectionData[sym.Section]
		if !ok && section.Type != elf.SHT_NOBITS {
			if data, err = section.Data(); err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrObjectLoad.Error()), "section", section.Name)
			}
			sectionData[sym.Section] = data
		}

		// In a relocatable object the symbol value is its offset within
		// the section.
		var content []byte
		if end := sym.Value + sym.Size; end <= uint64(len(data)) {
			content = data[sym.Value:end]
		}

		obj.Symbols = append(obj.Symbols, domain.Symbol{
			Name:        sym.Name,
			Section:     section.Name,
			Address:     sym.Value,
			Size:        sym.Size,
			Bytes:       content,
			Fingerprint: xxhash.Sum64(content),
		})
	}

	return obj, nil
}
