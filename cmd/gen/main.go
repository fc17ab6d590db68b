package main

import (
	"circulate/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.BookModel{},
		model.PatronModel{},
		model.StaffModel{},
		model.LoanModel{},
		model.LoanRenewalModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
