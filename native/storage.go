package native

// Storage is a typed view of SuperMatrix.Store.
//
// The set of implementations is closed: CompCol, CompColPermuted, CompRow,
// SuperNode, Dense and Unknown. Callers dispatch with a type switch.
type Storage interface {
	// Type returns the storage tag the view was derived from.
	Type() StorageType
	isStorage()
}

// CompCol is the view of an NC record.
type CompCol struct{ Store *NCformat }

// CompColPermuted is the view of an NCP record.
type CompColPermuted struct{ Store *NCPformat }

// CompRow is the view of an NR record.
type CompRow struct{ Store *NRformat }

// SuperNode is the view of an SC, SCP or SR record.
type SuperNode struct {
	Kind  StorageType
	Store *SCformat
}

// Dense is the view of a DN record.
type Dense struct{ Store *DNformat }

// Unknown is returned for tags this package has no layout for.
type Unknown struct{ Tag StorageType }

func (CompCol) Type() StorageType         { return StorageCompCol }
func (CompColPermuted) Type() StorageType { return StorageCompColPermuted }
func (CompRow) Type() StorageType         { return StorageCompRow }
func (s SuperNode) Type() StorageType     { return s.Kind }
func (Dense) Type() StorageType           { return StorageDense }
func (u Unknown) Type() StorageType       { return u.Tag }

func (CompCol) isStorage()         {}
func (CompColPermuted) isStorage() {}
func (CompRow) isStorage()         {}
func (SuperNode) isStorage()       {}
func (Dense) isStorage()           {}
func (Unknown) isStorage()         {}

// Storage reinterprets Store according to Stype.
//
// This is the only place the opaque pointer is cast. The layout of Store is
// trusted; a nil Store yields a view with a nil pointer.
func (m *SuperMatrix) Storage() Storage {
	switch m.Stype {
	case StorageCompCol:
		return CompCol{Store: (*NCformat)(m.Store)}
	case StorageCompColPermuted:
		return CompColPermuted{Store: (*NCPformat)(m.Store)}
	case StorageCompRow:
		return CompRow{Store: (*NRformat)(m.Store)}
	case StorageSuperNode, StorageSuperNodePermuted, StorageSuperNodeRow:
		return SuperNode{Kind: m.Stype, Store: (*SCformat)(m.Store)}
	case StorageDense:
		return Dense{Store: (*DNformat)(m.Store)}
	default:
		return Unknown{Tag: m.Stype}
	}
}

// CompCol returns the NC store if m is tagged StorageCompCol.
func (m *SuperMatrix) CompCol() (*NCformat, bool) {
	s, ok := m.Storage().(CompCol)
	if !ok || s.Store == nil {
		return nil, false
	}
	return s.Store, true
}
