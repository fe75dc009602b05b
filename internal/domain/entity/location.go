package entity

// LocationKind determina qué variante de distribución de ganancias aplica a una sede.
type LocationKind string

const (
	// KindStandardBranch sede principal con split completo local/distribución.
	KindStandardBranch LocationKind = "standard_branch"
	// KindSecondaryBranch sede secundaria; mismas reglas que la principal.
	KindSecondaryBranch LocationKind = "secondary_branch"
	// KindCentralPlant la planta: sin tramos de franquiciado ni encargado.
	KindCentralPlant LocationKind = "central_plant"
)

// IsBranch indica si la sede es una sucursal (aplica franquiciado y encargado).
func (k LocationKind) IsBranch() bool {
	return k == KindStandardBranch || k == KindSecondaryBranch
}

// Valid indica si el valor es uno de los tipos conocidos.
func (k LocationKind) Valid() bool {
	switch k {
	case KindStandardBranch, KindSecondaryBranch, KindCentralPlant:
		return true
	}
	return false
}

// Location una sede de la cadena. Toda cifra de ganancia neta se asocia a
// exactamente una sede antes de distribuirse.
type Location struct {
	ID   string
	Name string // MAGALLANES, SARRIAS, PSYFN
	Kind LocationKind
}
