package domain

// Object is the parsed in-memory form of a built artifact. The diff engine
// annotates it in place with match percentages.
type Object struct {
	// Path is the file the object was loaded from.
	Path string
	// Arch is the machine architecture reported by the container format.
	Arch string
	// Symbols are the defined function and data symbols, in file order.
	Symbols []Symbol

	// MatchPercent is the size-weighted match across all compared symbols.
	// Written by the diff engine; zero until a diff has run.
	MatchPercent float64
}

// Symbol is one defined symbol within an object.
type Symbol struct {
	Name    string
	Section string
	Address uint64
	Size    uint64
	// Bytes is the symbol's raw content, sliced out of its section.
	Bytes []byte
	// Fingerprint is a content hash used for cheap equality checks.
	Fingerprint uint64

	// MatchPercent is the byte-level match against the paired symbol.
	// Written by the diff engine; nil until a diff has run or if the
	// symbol has no counterpart on the other side.
	MatchPercent *float64
}

// FindSymbol returns the symbol with the given name, or nil.
func (o *Object) FindSymbol(name string) *Symbol {
	for i := range o.Symbols {
		if o.Symbols[i].Name == name {
			return &o.Symbols[i]
		}
	}
	return nil
}
