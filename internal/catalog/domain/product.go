package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is the normalized product shape, regardless of whether the record
// came from the local store or the remote catalog.
type Product struct {
	ID          string  `json:"_id" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	Description string  `json:"description" bson:"description"`
	Image       string  `json:"image" bson:"image"`
	Category    string  `json:"category" bson:"category"`
	Stock       int     `json:"stock" bson:"stock"`
	Rating      *Rating `json:"rating,omitempty" bson:"rating,omitempty"`
}

type Rating struct {
	Rate  float64 `json:"rate" bson:"rate"`
	Count int     `json:"count" bson:"count"`
}

// DefaultStock is assumed for products whose source does not report stock
// (the remote catalog does not).
const DefaultStock = 100

type IDKind int

const (
	// LocalID references a record in the first-party product store.
	LocalID IDKind = iota
	// RemoteID references a record in the third-party catalog's id space.
	RemoteID
)

// ProductID is a product identifier tagged with the data space it belongs to.
type ProductID struct {
	Value string
	Kind  IDKind
}

// ClassifyID decides which data space an identifier belongs to. Local store
// keys are 24-character hex ObjectIDs; everything else is treated as a remote
// catalog id. Classification happens once here, at the resolver boundary.
func ClassifyID(raw string) ProductID {
	if _, err := primitive.ObjectIDFromHex(raw); err == nil {
		return ProductID{Value: raw, Kind: LocalID}
	}
	return ProductID{Value: raw, Kind: RemoteID}
}
