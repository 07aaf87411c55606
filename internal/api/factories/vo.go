package factories

import (
	"fmt"

	"github.com/bluele/factory-go/factory"
	"github.com/brianvoe/gofakeit"
	"github.com/vscentrum/accountpagectl/internal/api/models"
)

var VirtualOrganisationFactory = factory.NewFactory(
	&models.VirtualOrganisation{
		Status:      models.StatusActive,
		Institute:   models.Institute{Name: "gent"},
		DataPath:    "/user/data/gent/gvo000/gvo00002",
		ScratchPath: "/user/scratch/gent/gvo000/gvo00002",
		Description: "research group",
		Members:     []string{"vsc40075", "vsc40076"},
		Moderators:  []string{"vsc40075"},
	},
).Attr("VscID", func(args factory.Args) (interface{}, error) {
	return fmt.Sprintf("gvo%05d", gofakeit.Number(0, 99999)), nil
}).Attr("VscIDNumber", func(args factory.Args) (interface{}, error) {
	return uint64(gofakeit.Number(2640000, 2649999)), nil
}).Attr("Fairshare", func(args factory.Args) (interface{}, error) {
	return uint32(gofakeit.Number(1, 1000)), nil
})
