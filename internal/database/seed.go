package database

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/trip-planner-go/internal/models"
)

// CatalogSeed is the curated Mauritius catalog, including the home
// base hotel every day's route starts and ends at.
var CatalogSeed = []models.Location{
	{
		Name: "C Mauritius (Hotel)", Lat: -20.1896, Lng: 57.7798, Category: models.CategoryHotel,
		Notes: "Home base on Palmar beach, east coast. Every day's route starts and ends here.",
	},

	// Nature & landscapes
	{
		Name: "Black River Gorges National Park", Lat: -20.4264, Lng: 57.4509, Category: models.CategoryNature, Rating: 4.6,
		Notes: "Largest national park — lush rainforest, endemic birds, gorge viewpoints. Half-day hike. Free entry.",
		Hours: "Daily 6 AM – 6 PM", Phone: "+230 464 4053", PlaceID: "ChIJt8DLt5hofCERPkIVoGc3sbQ",
	},
	{
		Name: "Le Morne Brabant (UNESCO)", Lat: -20.45, Lng: 57.3167, Category: models.CategoryNature, Rating: 4.8,
		Notes:   "556m UNESCO mountain — historic slave refuge with panoramic ocean views. Guided hike recommended, start before 6 AM! Bring 1L+ water per person.",
		PlaceID: "ChIJUbKvu_psfCER8_n3Y6TuK5k",
	},
	{
		Name: "Seven Coloured Earths", Lat: -20.4401, Lng: 57.3732, Category: models.CategoryNature, Rating: 4.3,
		Notes: "Geological marvel — multi-colored sand dunes + giant tortoises. Entry ~750 MUR. Combine with Chamarel Waterfall (same ticket).",
		Hours: "Daily 8:30 AM – 5 PM", Phone: "+230 483 4298", PlaceID: "ChIJOSVA3qdufCER1eqGkmZqZz8",
	},
	{
		Name: "Chamarel Waterfall", Lat: -20.4432, Lng: 57.3858, Category: models.CategoryNature, Rating: 4.5,
		Notes: "Tallest single-drop waterfall in Mauritius (~100m). Included with Seven Coloured Earths ticket. Best in early morning light.",
		Hours: "Daily 8:30 AM – 5 PM", PlaceID: "ChIJbzVmhbpufCERivQiEa2ZfVI",
	},
	{
		Name: "Trou aux Cerfs Crater", Lat: -20.315, Lng: 57.505, Category: models.CategoryNature, Rating: 4.2,
		Notes:   "Extinct volcanic crater in Curepipe with a lake inside. 360° island panorama. Free entry, drive right to the top. Quick 30-min stop.",
		PlaceID: "ChIJfR7_gPZcfCERQNErP59DJ5w",
	},
	{
		Name: "Eau Bleue Waterfall", Lat: -20.4095, Lng: 57.5989, Category: models.CategoryNature, Rating: 4.5,
		Notes: "Hidden gem! Beautiful cascade with vivid blue-green pools. Requires some scrambling over rocks — wear grip shoes. Less touristy, locals' favorite. Free entry.",
	},

	// Beaches & islands
	{
		Name: "Île aux Cerfs", Lat: -20.2724, Lng: 57.8041, Category: models.CategoryBeach, Rating: 4.4,
		Notes:   "Famous island paradise — white sand, turquoise water, water sports. Take a catamaran with BBQ lunch & GRSE waterfall stop. Ferry return 450 MUR.",
		PlaceID: "ChIJWROevgzwfCERgS45v3_lbRM",
	},
	{
		Name: "Trou aux Biches Beach", Lat: -20.035, Lng: 57.545, Category: models.CategoryBeach, Rating: 4.5,
		Notes:   "Top-rated beach in the north — excellent snorkeling right from shore with colorful fish. Calm, crystal-clear water.",
		PlaceID: "ChIJs5FkQaSsfSERbH9Y1RR_noc",
	},
	{
		Name: "Flic en Flac Beach", Lat: -20.2995, Lng: 57.3634, Category: models.CategoryBeach, Rating: 4.4,
		Notes:   "8km beach on the west coast — legendary sunsets, calm lagoon, great restaurants nearby. Best sunset spot on the island.",
		PlaceID: "ChIJJzYqH3xBfCERVSO2RZTiJp4",
	},
	{
		Name: "Blue Bay Marine Park", Lat: -20.4448, Lng: 57.7098, Category: models.CategoryBeach, Rating: 4.5,
		Notes: "Best snorkeling in Mauritius — protected marine park with vibrant coral and fish. Glass-bottom boats available. Bring your own snorkel gear.",
		Hours: "Daily 8:30 AM – 4 PM", PlaceID: "ChIJ16w1WRKLfCER5ydjhXmMOWY",
	},
	{
		Name: "Le Morne Beach", Lat: -20.4525, Lng: 57.3127, Category: models.CategoryBeach, Rating: 4.6,
		Notes:   "Stunning beach with Le Morne mountain backdrop. World-class kitesurfing. Amazing sunsets. Free parking, public toilets, beverage stall.",
		PlaceID: "ChIJlZsRYeRsfCERq8EO0pSv-g8",
	},
	{
		Name: "Savinia Beach", Lat: -20.4897, Lng: 57.5269, Category: models.CategoryBeach, Rating: 4.4,
		Notes: "Hidden gem in the south! Secluded, uncrowded beach with dramatic coastal scenery. No facilities — bring your own supplies.",
	},

	// Water activities
	{
		Name: "Crystal Rock", Lat: -20.4143, Lng: 57.3376, Category: models.CategoryWater, Rating: 4.6,
		Notes:   "Iconic rock formation in the turquoise lagoon — amazing snorkeling. Boat access only. Shallow water, watch for sea urchins — wear reef shoes.",
		PlaceID: "ChIJzdte40JrfCERdFULlc7NxhA",
	},
	{
		Name: "Île aux Aigrettes", Lat: -20.4205, Lng: 57.7325, Category: models.CategoryWater, Rating: 4.7,
		Notes:   "Conservation island run by Mauritian Wildlife Foundation — pink pigeons, giant tortoises, endemic species. Guided tours only, book ahead.",
		PlaceID: "ChIJm7SNNVWLfCERwNVhniqvuDE",
	},
	{
		Name: "Tamarin Bay — Dolphins, Whales & Surfing", Lat: -20.3256, Lng: 57.3719, Category: models.CategoryWater, Rating: 4.5,
		Notes: "THE spot for wild dolphin swimming (sunrise 6 AM, ~90% success rate). Also the island's best surfing. Whale watching June–November.",
	},
	{
		Name: "Catamaran Cruise — Grand Baie", Lat: -20.0127, Lng: 57.5804, Category: models.CategoryWater,
		Notes: "Full-day catamaran cruises to the northern islands (Coin de Mire, Flat Island, Gabriel Island). Snorkeling, BBQ lunch, rum punch. Book a day ahead.",
	},
	{
		Name: "Submarine Safari — Trou aux Biches", Lat: -20.0336, Lng: 57.5422, Category: models.CategoryWater,
		Notes:   "Descend 35m below the surface in a real submarine! Coral, fish, and shipwrecks without getting wet. ~2 hours total.",
		Website: "https://www.blue-safari.com",
	},
	{
		Name: "Scuba Diving — Flic en Flac", Lat: -20.2888, Lng: 57.3585, Category: models.CategoryWater,
		Notes: "Premier dive site — Cathedral (underwater cave with light shafts) and several wrecks. Visibility 15–30m. Best conditions Oct–Apr.",
	},

	// Culture & history
	{
		Name: "Port Louis Central Market", Lat: -20.1607, Lng: 57.503, Category: models.CategoryCulture, Rating: 4.0,
		Notes: "Spices, street food, souvenirs. Try dholl puri at Maraz stall. Haggle for souvenirs upstairs! Speak French for better prices.",
		Hours: "Mon–Sat 5 AM – 5:30 PM, Sun 5 – 11:30 AM", PlaceID: "ChIJT4oHW6tRfCERNzHolp3ATAE",
	},
	{
		Name: "Caudan Waterfront", Lat: -20.1609, Lng: 57.4981, Category: models.CategoryCulture, Rating: 4.3,
		Notes: "Modern waterfront with shops, restaurants, Umbrella Street, cinema & casino. Nice evening stroll by the harbor.",
		Hours: "Daily ~9 AM – 7 PM", Phone: "+230 211 9500", Website: "https://www.caudan.com", PlaceID: "ChIJWQHWQUlQfCERUuLoViCAENE",
	},
	{
		Name: "Aapravasi Ghat (UNESCO)", Lat: -20.1586, Lng: 57.503, Category: models.CategoryCulture, Rating: 4.5,
		Notes: "Historic immigration depot — free entry. Powerful museum about indentured labour history. Allow 1 hour.",
		Hours: "Mon–Fri 9 AM – 4 PM, Sat 9 AM – 12 PM", Phone: "+230 217 7770", PlaceID: "ChIJPR5dhatRfCERzCZ6gB1QwCE",
	},
	{
		Name: "Cap Malheureux Church", Lat: -19.9866, Lng: 57.6222, Category: models.CategoryCulture, Rating: 4.6,
		Notes: "Iconic red-roofed church against the ocean — one of the most photographed spots in Mauritius. Beautiful beach next door.",
		Hours: "Daily 9:30 AM – 6 PM", PlaceID: "ChIJQTut9heqfSERXKUeE-z0S9c",
	},
	{
		Name: "Pamplemousses Botanical Garden", Lat: -20.1047, Lng: 57.5803, Category: models.CategoryCulture, Rating: 4.3,
		Notes: "Giant water lilies, spice trees, 300+ years of history. Entry 300 MUR (tourists). Bring ALL the mosquito repellent! 2–3 hours.",
		Hours: "Daily 8:30 AM – 5 PM", Phone: "+230 243 9401", PlaceID: "ChIJB0u1o0NUfCERozS9H8g9EbM",
	},
	{
		Name: "Flacq Market", Lat: -20.1891, Lng: 57.7257, Category: models.CategoryCulture, Rating: 4.1,
		Notes: "Largest open-air market in Mauritius — authentic local atmosphere, fresh produce, spices, clothing. Only open Wed & Sun.",
		Hours: "Wed & Sun 6 AM – 5 PM", PlaceID: "ChIJZXVqU2b5fCERD7lqSqgrKhk",
	},

	// Food & drink
	{
		Name: "Bois Chéri Tea Factory", Lat: -20.4263, Lng: 57.5257, Category: models.CategoryFood, Rating: 4.3,
		Notes: "Tea plantation tour + generous tasting (~12 varieties) with hilltop views over the tea fields. Last morning tour at 11:30 AM.",
		Hours: "Mon–Fri 9 AM – 5 PM, Sat 9 – 11:30 AM, Sun 9 AM – 4 PM", Phone: "+230 617 9109", PlaceID: "ChIJtY-hmuZmfCERXHQHiB1gUSM",
	},
	{
		Name: "Rhumerie de Chamarel", Lat: -20.4279, Lng: 57.3963, Category: models.CategoryFood, Rating: 4.5,
		Notes: "Rum distillery tour + tasting of ~12 varieties (clear, aged, vanilla, coffee, mandarin). Try the mandarin liqueur! Closed Sundays.",
		Hours: "Mon–Sat 9:30 AM – 4:30 PM", Phone: "+230 483 4980", Website: "https://www.rhumeriedechamarel.com", PlaceID: "ChIJ_zudTjZpfCERrM6aNE6Tb54",
	},

	// Adventure
	{
		Name: "Casela Nature Park", Lat: -20.2908, Lng: 57.404, Category: models.CategoryAdventure, Rating: 4.2,
		Notes: "Safari with zebras, rhinos, giraffes, ostriches. Also ziplines, walk with lions, quad biking. Full day recommended.",
		Hours: "Daily 9 AM – 5 PM", Phone: "+230 401 6500", Website: "https://caselaparks.com", PlaceID: "ChIJnyzvaKNDfCERqB8AG6IxUxo",
	},
	{
		Name: "La Vanille Nature Park", Lat: -20.4992, Lng: 57.5633, Category: models.CategoryAdventure, Rating: 4.4,
		Notes: "World's largest captive Aldabra tortoise collection + Nile crocodiles. Arrive at 11 AM for tortoise feeding. Entry ~975 MUR.",
		Hours: "Daily 9 AM – 5 PM", Phone: "+230 626 2503", Website: "https://www.lavanillenaturepark.com", PlaceID: "ChIJ9XjfW4VjfCERDOuuTXuQI1w",
	},
	{
		Name: "Grand Baie", Lat: -20.0089, Lng: 57.5816, Category: models.CategoryAdventure,
		Notes:   "Lively tourist hub in the north — restaurants, nightlife, shopping, and departure point for catamaran cruises & deep-sea fishing.",
		PlaceID: "ChIJ2269OXerfSERcd_ausyqcLQ",
	},
	{
		Name: "Kitesurfing — Le Morne", Lat: -20.4618, Lng: 57.3195, Category: models.CategoryAdventure,
		Notes: "World-renowned kitesurfing spot — 'One Eye' wave is famous among pros. Flat-water lagoon perfect for beginners too. Best wind June–November.",
	},
}

// seedCatalog inserts the curated catalog, leaving existing rows
// untouched so re-running migrations is idempotent.
func seedCatalog(db *sql.DB) error {
	stmt, err := db.Prepare(`
		INSERT OR IGNORE INTO locations
			(name, lat, lng, category, rating, notes, hours, phone, website, place_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare catalog seed: %w", err)
	}
	defer stmt.Close()

	for _, loc := range CatalogSeed {
		_, err := stmt.Exec(
			loc.Name, loc.Lat, loc.Lng, string(loc.Category),
			nullFloat(loc.Rating), loc.Notes,
			nullString(loc.Hours), nullString(loc.Phone),
			nullString(loc.Website), nullString(loc.PlaceID),
		)
		if err != nil {
			return fmt.Errorf("failed to seed location %q: %w", loc.Name, err)
		}
	}
	return nil
}

func nullFloat(f float64) interface{} {
	if f == 0 {
		return nil
	}
	return f
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
