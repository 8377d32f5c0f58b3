package daemon

import (
	"gorm.io/gorm"

	"github.com/vinoteka/vinoteka/internal/db/models"
)

func ptr[T any](v T) *T { return &v }

// sampleWines fill an empty catalog in dev mode.
func sampleWines() []models.Wine {
	return []models.Wine{
		{ID: 1, Title: "Catena Zapata Adrianna Vineyard Malbec 2018", Vintage: ptr(2018), Country: "Argentina",
			Points: 96, Price: ptr(120.0), Province: ptr("Mendoza Province"), Variety: ptr("Malbec"),
			Winery: ptr("Catena Zapata"), Designation: ptr("Adrianna Vineyard")},
		{ID: 2, Title: "Vega Sicilia Único 2011", Vintage: ptr(2011), Country: "Spain", Points: 97,
			Price: ptr(450.0), Province: ptr("Northern Spain"), Variety: ptr("Tempranillo Blend"),
			Winery: ptr("Vega Sicilia"), County: ptr("Ribera del Duero")},
		{ID: 3, Title: "Muga Reserva 2019", Vintage: ptr(2019), Country: "Spain", Points: 91, Price: ptr(28.0),
			Province: ptr("Northern Spain"), Variety: ptr("Tempranillo"), Winery: ptr("Bodegas Muga"),
			County: ptr("Rioja")},
		{ID: 4, Title: "Marqués de Murrieta Castillo Ygay 2010", Vintage: ptr(2010), Country: "Spain",
			Points: 98, Province: ptr("Northern Spain"), Variety: ptr("Tempranillo"),
			Winery: ptr("Marqués de Murrieta")},
		{ID: 5, Title: "Concha y Toro Don Melchor 2020", Vintage: ptr(2020), Country: "Chile", Points: 95,
			Price: ptr(110.0), Province: ptr("Maipo Valley"), Variety: ptr("Cabernet Sauvignon"),
			Winery: ptr("Concha y Toro")},
		{ID: 6, Title: "Pazo de Señorans Albariño 2022", Vintage: ptr(2022), Country: "Spain", Points: 90,
			Price: ptr(22.5), Province: ptr("Galicia"), Variety: ptr("Albariño"),
			Winery: ptr("Pazo de Señorans"), County: ptr("Rías Baixas")},
		{ID: 7, Title: "Zuccardi Valle de Uco Concreto Malbec 2021", Vintage: ptr(2021), Country: "Argentina",
			Points: 94, Price: ptr(55.0), Province: ptr("Mendoza Province"), Variety: ptr("Malbec"),
			Winery: ptr("Zuccardi")},
		{ID: 8, Title: "Alvaro Palacios Finca Dofí 2019", Vintage: ptr(2019), Country: "Spain", Points: 95,
			Price: ptr(95.0), Province: ptr("Catalonia"), Variety: ptr("Garnacha"),
			Winery: ptr("Alvaro Palacios"), County: ptr("Priorat")},
		{ID: 9, Title: "Bodegas Borsao Tres Picos Garnacha", Country: "Spain", Points: 90, Price: ptr(18.0),
			Province: ptr("Aragon"), Variety: ptr("Garnacha"), Winery: ptr("Bodegas Borsao")},
		{ID: 10, Title: "Tapiz Alta Collection Torrontés 2023", Vintage: ptr(2023), Country: "Argentina",
			Points: 87, Price: ptr(14.0), Province: ptr("Other"), Variety: ptr("Torrontés"), Winery: ptr("Tapiz")},
		{ID: 11, Title: "Lustau Almacenista Oloroso", Country: "Spain", Points: 93, Province: ptr("Andalucia"),
			Variety: ptr("Palomino"), Winery: ptr("Lustau"), County: ptr("Jerez")},
		{ID: 12, Title: "Montes Alpha Carmenère 2021", Vintage: ptr(2021), Country: "Chile", Points: 89,
			Price: ptr(19.99), Province: ptr("Colchagua Valley"), Variety: ptr("Carmenère"), Winery: ptr("Montes")},
	}
}

// seed inserts sampleWines when the catalog is empty.
func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Wine{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	return db.Create(sampleWines()).Error
}
