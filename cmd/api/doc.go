// @title        Pet Adoption Agency API
// @version      1.0
// @description  Adoptable pet records: list, add and edit.
// @BasePath     /
package main

//go:generate swag init --dir ../../ --generalInfo cmd/api/doc.go --output ../../docs --outputTypes go --parseInternal
