package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Molecule - hoạt chất của sản phẩm dược
type Molecule struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	MoleculeID   string             `json:"moleculeId" bson:"moleculeId" index:"unique"`
	MoleculeName string             `json:"moleculeName" bson:"moleculeName" index:"unique"` // Tên hoạt chất (unique)
	CreatedAt    int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
