package service

import (
	"cafe-map/internal/store"

	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	getUserByEmail = store.GetUserByEmail
	createUser = store.CreateUser
	listCafes = store.ListCafes
	getCafeByID = store.GetCafeByID
	createCafe = store.CreateCafe
	updateCafe = store.UpdateCafe
	deleteCafe = store.DeleteCafe
}

func strPtr(s string) *string      { return &s }
func floatPtr(f float64) *float64 { return &f }
