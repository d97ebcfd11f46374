package cerialize_test

import (
	"fmt"

	"github.com/weichx/cerialize"
	"github.com/weichx/cerialize/annotate"
	"github.com/weichx/cerialize/metadata"
	"github.com/weichx/cerialize/primitive"
	"github.com/weichx/cerialize/strcase"
)

type Coordinate struct {
	Lat float64 `cerialize:"lat"`
	Lng float64 `cerialize:"lng"`
}

type Place struct {
	Name     string
	Location Coordinate
	Tags     []string
}

func ExampleSerialize() {
	cerialize.MustRegister[Coordinate]()

	tree, err := cerialize.Serialize(&Coordinate{Lat: 51.5, Lng: -0.12}, nil)
	if err != nil {
		panic(err)
	}

	fmt.Println(tree)
	// Output: map[lat:51.5 lng:-0.12]
}

func ExampleDeserializeAs() {
	cerialize.MustRegister[Coordinate]()

	c, err := cerialize.DeserializeAs[Coordinate](map[string]any{"lat": "10", "lng": 20.0})
	if err != nil {
		panic(err)
	}

	fmt.Printf("%+v\n", *c)
	// Output: {Lat:10 Lng:20}
}

func ExampleMapper_Annotate() {
	m := cerialize.NewMapper(
		cerialize.WithRegistry(metadata.NewRegistry()),
		cerialize.WithSerializeKeyTransform(strcase.SnakeCase),
	)

	place := cerialize.TypeOf[Place]()
	_ = m.Register(cerialize.TypeOf[Coordinate]())
	_ = m.Annotate(place, "Name", annotate.Autoserialize())
	_ = m.Annotate(place, "Location", annotate.AutoserializeAs(cerialize.TypeOf[Coordinate](), "loc"))
	_ = m.Annotate(place, "Tags", annotate.AutoserializeAsArray(primitive.String))

	tree, _ := m.Serialize(&Place{
		Name:     "Greenwich",
		Location: Coordinate{Lat: 51.48},
		Tags:     []string{"park"},
	}, nil)

	fmt.Println(tree)
	// Output: map[loc:map[lat:51.48 lng:0] name:Greenwich tags:[park]]
}

func ExampleMapper_DeserializeJSON() {
	m := cerialize.NewMapper(cerialize.WithDeserializeKeyTransform(strcase.CamelCase))

	out, _ := m.DeserializeJSON(map[string]any{"user_name": "ada", "is_admin": true}, true, nil)

	fmt.Println(out)
	// Output: map[isAdmin:true userName:ada]
}
