package main

import (
	"inndoor/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AccountModel{},
		model.ProfileModel{},
		model.RefreshTokenModel{},
		model.PropertyModel{},
		model.PropertyImageModel{},
		model.InspectionModel{},
		model.DealModel{},
		model.ReviewModel{},
		model.MessageModel{},
		model.NotificationModel{},
		model.SavedPropertyModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
