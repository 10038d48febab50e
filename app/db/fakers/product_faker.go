package fakers

import (
	"math/rand"
	"time"

	"goshop/app/models"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

var palette = []models.Color{
	{Name: "Black", Code: "#000000"},
	{Name: "White", Code: "#FFFFFF"},
	{Name: "Red", Code: "#FF0000"},
	{Name: "Green", Code: "#00FF00"},
	{Name: "Blue", Code: "#0000FF"},
}

func ColorFakers() []models.Color {
	colors := make([]models.Color, len(palette))
	for i, c := range palette {
		colors[i] = models.Color{
			ID:        uuid.New().String(),
			Name:      c.Name,
			Code:      c.Code,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
	}
	return colors
}

func AttributeFakers() []models.Attribute {
	names := []string{"Screen size", "Material", "Weight"}
	attributes := make([]models.Attribute, len(names))
	for i, name := range names {
		attributes[i] = models.Attribute{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
	}
	return attributes
}

// ProductFaker builds a product with one variant per picked color and a
// value for each attribute. Colors and attributes must already exist.
func ProductFaker(category models.Category, colors []models.Color, attributes []models.Attribute) *models.Product {
	name := faker.Word() + " " + faker.Word()
	productID := uuid.New().String()

	numVariants := rand.Intn(len(colors)) + 1
	variants := make([]models.Variant, 0, numVariants)
	for _, color := range colors[:numVariants] {
		variants = append(variants, models.Variant{
			ID:        uuid.New().String(),
			ProductID: productID,
			ColorID:   color.ID,
			Price:     decimal.NewFromInt(int64(rand.Intn(900) + 100)),
			Stock:     rand.Intn(20),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
	}

	values := make([]models.ProductAttributeValue, 0, len(attributes))
	for _, attribute := range attributes {
		values = append(values, models.ProductAttributeValue{
			ID:          uuid.New().String(),
			ProductID:   productID,
			AttributeID: attribute.ID,
			Value:       faker.Word(),
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		})
	}

	return &models.Product{
		ID:              productID,
		Name:            name,
		Slug:            slug.Make(name + "-" + uuid.NewString()[:6]),
		Description:     faker.Paragraph(),
		Brand:           faker.LastName(),
		IsActive:        true,
		Categories:      []models.Category{category},
		Variants:        variants,
		AttributeValues: values,
		Tags: []models.ProductTag{
			{ID: uuid.New().String(), ProductID: productID, Name: faker.Word(), CreatedAt: time.Now()},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
