// Package finance contiene el núcleo de cálculo puro de la cadena: filtro por
// período, distribución de ganancias netas y comisiones semanales de barberos.
// Ninguna función de este paquete hace I/O ni toca estado compartido.
package finance

import "github.com/nordico/barber-api/internal/domain/entity"

// IncomeBucket bucket de ingreso al que se clasifica una línea de venta.
// Es un conjunto cerrado: toda categoría conocida mapea a exactamente un bucket,
// y las cortesías quedan fuera de los reportes.
type IncomeBucket string

const (
	BucketBarberService IncomeBucket = "Servicio de Barberia"
	BucketGamerZone     IncomeBucket = "Zona Gamer"
	BucketSnacks        IncomeBucket = "Snacks"
	BucketProducts      IncomeBucket = "Productos"
	// BucketNone cortesías y categorías sin valor comercial; se excluyen.
	BucketNone IncomeBucket = ""
)

// Categorías de servicio del catálogo.
const (
	CategoryBarberia  = "barberia"
	CategoryNordico   = "nordico"
	CategoryGamerZone = "zona gamer"
)

// Categorías de producto sin ingreso (regalos al cliente).
const (
	CategoryCourtesy      = "Cortesía"
	CategorySnackCourtesy = "Snack de Cortesía"
	CategorySnack         = "Snack"
)

// serviceBuckets mapeo cerrado de categoría de servicio a bucket.
var serviceBuckets = map[string]IncomeBucket{
	CategoryBarberia:  BucketBarberService,
	CategoryNordico:   BucketBarberService,
	CategoryGamerZone: BucketGamerZone,
}

// Classify devuelve el bucket de ingreso de una línea. Las cortesías y las
// categorías de servicio desconocidas devuelven BucketNone.
func Classify(item entity.TicketItem) IncomeBucket {
	if item.Category == CategorySnack {
		return BucketSnacks
	}
	switch item.Type {
	case entity.ItemTypeService:
		return serviceBuckets[item.Category]
	case entity.ItemTypeProduct:
		if item.Category == CategoryCourtesy || item.Category == CategorySnackCourtesy {
			return BucketNone
		}
		return BucketProducts
	}
	return BucketNone
}

// IsQualifyingService indica si la línea cuenta para el tramo de comisión
// semanal del barbero: solo servicios de la línea principal de barbería
// (la zona gamer y demás categorías secundarias quedan excluidas).
func IsQualifyingService(item entity.TicketItem) bool {
	return item.Type == entity.ItemTypeService && Classify(item) == BucketBarberService
}
