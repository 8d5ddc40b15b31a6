package entity

// Customer representa un cliente al que se le facturan cobros.
// Es una entidad de referencia: este servicio la lee para los formularios y
// listados pero nunca la muta.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}
