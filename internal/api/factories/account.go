package factories

import (
	"fmt"
	"time"

	"github.com/bluele/factory-go/factory"
	"github.com/brianvoe/gofakeit"
	"github.com/vscentrum/accountpagectl/internal/api/models"
)

var PersonFactory = factory.NewFactory(
	&models.Person{
		Institute: models.Institute{Name: "gent"},
	},
).Attr("Gecos", func(args factory.Args) (interface{}, error) {
	return gofakeit.Name(), nil
}).Attr("InstituteLogin", func(args factory.Args) (interface{}, error) {
	return fmt.Sprintf("login%v", gofakeit.Number(1000, 9999)), nil
}).Attr("Realeppn", func(args factory.Args) (interface{}, error) {
	return fmt.Sprintf("user%v@ugent.be", gofakeit.Number(1000, 9999)), nil
})

var AccountFactory = factory.NewFactory(
	&models.Account{
		Status:           models.StatusActive,
		IsActive:         true,
		HomeDirectory:    "/user/home/gent/vsc400/vsc40075",
		DataDirectory:    "/user/data/gent/vsc400/vsc40075",
		ScratchDirectory: "/user/scratch/gent/vsc400/vsc40075",
		LoginShell:       "/bin/bash",
		ResearchField:    []string{"Physics", "nuclear physics"},
		CreateTimestamp:  time.Date(2019, time.March, 4, 12, 30, 0, 0, time.UTC),
	},
).Attr("VscID", func(args factory.Args) (interface{}, error) {
	return fmt.Sprintf("vsc4%04d", gofakeit.Number(0, 9999)), nil
}).Attr("VscIDNumber", func(args factory.Args) (interface{}, error) {
	return uint64(gofakeit.Number(2540000, 2549999)), nil
}).Attr("Email", func(args factory.Args) (interface{}, error) {
	return gofakeit.Email(), nil
}).Attr("Person", func(args factory.Args) (interface{}, error) {
	return *PersonFactory.MustCreate().(*models.Person), nil
})
