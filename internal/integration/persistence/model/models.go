package model

// All returns every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&CareProfileModel{},
		&LocationModel{},
		&TrackedPlantModel{},
		&WishlistEntryModel{},
	}
}
