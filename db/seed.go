package db

import (
	"log"
	"time"

	"github.com/pet-paradise/backend/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// Seed populates the database with the demo fixtures on first run. Each
// collection is seeded only when its table is empty, so existing data is
// never overwritten.
func Seed() {
	seedRoles()
	seedUsers()
	seedPets()
	seedProviders()
	seedAppointments()
	seedProducts()
	seedTutorials()
	seedMeetups()
	log.Println("✅ Demo data seeded")
}

func seedRoles() {
	roles := []models.Role{
		{Name: models.RoleOwner, Description: "Pet owner who can manage pets and book appointments"},
		{Name: models.RoleProvider, Description: "Service provider who can manage bookings and clients"},
		{Name: models.RoleEvaluator, Description: "Evaluator with access to the analytics dashboard"},
		{Name: models.RoleAdmin, Description: "Administrator with full access"},
	}
	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}
}

func seedUsers() {
	var count int64
	DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	var ownerRole models.Role
	DB.Where("name = ?", models.RoleOwner).First(&ownerRole)

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash demo password: %v", err)
		return
	}

	users := []models.User{
		{Name: "Sarah", Email: "alex.j@example.com", Phone: "555-123-4567"},
		{Name: "Sam Miller", Email: "sam.m@example.com", Phone: "555-987-6543"},
		{Name: "Maria Garcia", Email: "maria.g@example.com", Phone: "555-111-2222"},
		{Name: "Kenji Tanaka", Email: "kenji.t@example.com", Phone: "555-333-4444"},
		{Name: "Chloe Dubois", Email: "chloe.d@example.com", Phone: "555-555-6666"},
	}
	for i := range users {
		users[i].Password = string(hashed)
		users[i].RoleID = ownerRole.ID
		DB.Create(&users[i])
	}
}

func birthDateFromAge(years int) time.Time {
	return time.Now().AddDate(-years, 0, 0)
}

func seedPets() {
	var count int64
	DB.Model(&models.Pet{}).Count(&count)
	if count > 0 {
		return
	}

	nextRabies := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	pets := []models.Pet{
		{
			OwnerID:         1,
			Name:            "Buddy",
			Species:         models.SpeciesDog,
			Breed:           "Golden Retriever",
			BirthDate:       birthDateFromAge(5),
			Gender:          "Male",
			Height:          58,
			MicrochipID:     "985112003456789",
			ProfilePhotoURL: "https://images.unsplash.com/photo-1600804340584-c7db2eacf0bf?q=80&w=400&h=400&fit=crop",
			Likes:           "Playing fetch, swimming in the lake, belly rubs",
			Dislikes:        "Thunderstorms, being left alone for too long",
			FavoriteFood:    "Peanut butter & kibble mix",
			DietaryNotes:    "2 cups of sensitive stomach formula dry food, twice a day. Avoids chicken-based treats.",
			HealthRecords: []models.HealthRecord{
				{Type: models.RecordVaccination, Date: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), Title: "Rabies Vaccine", Details: "3-year booster shot.", NextDueDate: &nextRabies},
				{Type: models.RecordVetVisit, Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), Title: "Annual Checkup", Details: "All clear, healthy weight."},
				{Type: models.RecordAllergy, Date: time.Date(2022, 5, 10, 0, 0, 0, 0, time.UTC), Title: "Pollen", Details: "Mild seasonal allergies. Shows signs of sneezing in spring."},
			},
			WeightLog: []models.WeightEntry{
				{Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Weight: 34},
				{Date: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), Weight: 35},
				{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Weight: 34.5},
				{Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Weight: 35.5},
			},
		},
		{
			OwnerID:         1,
			Name:            "Lucy",
			Species:         models.SpeciesCat,
			Breed:           "Siamese",
			BirthDate:       birthDateFromAge(3),
			Gender:          "Female",
			Height:          25,
			ProfilePhotoURL: "https://images.unsplash.com/photo-1548802673-380ab8ebc7b7?q=80&w=400&h=400&fit=crop",
			Likes:           "Napping in sunbeams, chasing laser pointers, climbing on shelves",
			Dislikes:        "Loud noises, vacuum cleaner",
			FavoriteFood:    "Tuna-flavored wet food",
			DietaryNotes:    "1/4 cup of indoor cat formula dry food in the morning, half a can of wet food at night.",
			WeightLog: []models.WeightEntry{
				{Date: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), Weight: 4.5},
				{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Weight: 4.7},
			},
		},
		{
			OwnerID:         2,
			Name:            "Rocky",
			Species:         models.SpeciesDog,
			Breed:           "German Shepherd",
			BirthDate:       birthDateFromAge(7),
			Gender:          "Male",
			Height:          63,
			ProfilePhotoURL: "https://images.unsplash.com/photo-1568572933382-74d440642117?q=80&w=400&h=400&fit=crop",
			Likes:           "Playing fetch with a heavy-duty ball, going for long runs, learning new tricks",
			Dislikes:        "Being left alone, strangers approaching too quickly",
			FavoriteFood:    "Grilled chicken breast",
			DietaryNotes:    "High-protein diet for active dogs. 3 cups of large breed formula daily.",
		},
		{
			OwnerID:         2,
			Name:            "Misty",
			Species:         models.SpeciesCat,
			Breed:           "Persian",
			BirthDate:       birthDateFromAge(8),
			Gender:          "Female",
			Height:          24,
			ProfilePhotoURL: "https://images.unsplash.com/photo-1573865526739-10659fec78a5?q=80&w=400&h=400&fit=crop",
			Likes:           "Being brushed, sitting on laps, quiet afternoons",
			Dislikes:        "Sudden movements, dogs",
			FavoriteFood:    "Salmon pate",
			DietaryNotes:    "Specialty food for long-haired cats to prevent hairballs. Needs daily grooming.",
		},
		{
			OwnerID:         3,
			Name:            "Pepper",
			Species:         models.SpeciesDog,
			Breed:           "Dachshund",
			BirthDate:       birthDateFromAge(4),
			Gender:          "Female",
			Height:          23,
			ProfilePhotoURL: "https://images.unsplash.com/photo-1530281700549-e82e7bf110d6?q=80&w=400&h=400&fit=crop",
			Likes:           "Burrowing in blankets, sunbathing, barking at squirrels",
			Dislikes:        "Rain, being picked up by strangers",
			FavoriteFood:    "Cheese bits",
			DietaryNotes:    "Small breed formula, prone to back issues so keep weight managed.",
		},
	}
	for i := range pets {
		DB.Create(&pets[i])
	}
}

func seedProviders() {
	var count int64
	DB.Model(&models.ServiceProvider{}).Count(&count)
	if count > 0 {
		return
	}

	providers := []models.ServiceProvider{
		{
			Name:            "Oakwood Animal Hospital",
			Type:            models.ServiceVet,
			ServicesOffered: datatypes.NewJSONSlice([]string{"Annual Checkups", "Vaccinations", "Surgery", "Dental Care"}),
			Location:        "Sunnyvale, CA",
			Phone:           "555-0101",
			Email:           "contact@oakwoodvet.com",
			Rating:          4.8,
			WorkStart:       "09:00",
			WorkEnd:         "17:00",
			SlotDuration:    30,
			About:           "Oakwood Animal Hospital is a full-service veterinary medical facility. Our professional and courteous staff seeks to provide the best possible medical, surgical, and dental care for our highly-valued patients.",
			Amenities:       datatypes.NewJSONSlice([]string{"In-house Laboratory", "Digital X-Ray", "Surgical Suite", "Online Pharmacy"}),
			BusinessPolicies: "Appointments cancelled with less than 24 hours notice may be subject to a cancellation fee. " +
				"For the safety of all animals in our care, we require that all vaccinations be up-to-date.",
			Team: []models.TeamMember{
				{Name: "Dr. Emily Carter, DVM", Title: "Lead Veterinarian", PhotoURL: "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?q=80&w=200&h=200&fit=crop"},
				{Name: "Dr. Ben Hanson, DVM", Title: "Associate Veterinarian", PhotoURL: "https://images.unsplash.com/photo-1622253692010-333f2da6031d?q=80&w=200&h=200&fit=crop"},
			},
			Reviews: []models.Review{
				{Author: "Jane D.", Rating: 5, Comment: "Very caring staff!"},
			},
		},
		{
			Name:            "Bayside Veterinary Clinic",
			Type:            models.ServiceVet,
			ServicesOffered: datatypes.NewJSONSlice([]string{"Emergency Care", "Checkups", "X-Rays"}),
			Location:        "Redwood City, CA",
			Phone:           "555-0102",
			Email:           "info@baysidevet.com",
			Rating:          4.6,
			WorkStart:       "08:00",
			WorkEnd:         "18:00",
			SlotDuration:    30,
			About:           "We are committed to promoting responsible pet ownership, preventative health care and health-related educational opportunities for our clients.",
			Amenities:       datatypes.NewJSONSlice([]string{"24/7 Emergency Services", "Ultrasound Imaging", "Intensive Care Unit (ICU)"}),
		},
		{
			Name:            "Pristine Paws Grooming",
			Type:            models.ServiceGrooming,
			ServiceLocation: models.LocationInStore,
			ServicesOffered: datatypes.NewJSONSlice([]string{"Full Groom", "Bath & Brush", "Nail Trim", "Teeth Cleaning"}),
			Location:        "Sunnyvale, CA",
			Phone:           "555-0201",
			Email:           "appointments@pristinepaws.com",
			Rating:          4.7,
			WorkStart:       "08:30",
			WorkEnd:         "18:00",
			SlotDuration:    90,
			About:           "We believe grooming is an essential part of a pet's health. Our experienced groomers provide top-notch service in a calm and safe environment.",
			Amenities:       datatypes.NewJSONSlice([]string{"Hypoallergenic Shampoos", "Walk-in Nail Trims", "Express Grooming Option", "Blueberry Facials"}),
			Team: []models.TeamMember{
				{Name: "Maria Rodriguez", Title: "Master Groomer", PhotoURL: "https://images.unsplash.com/photo-1525011214256-820f4c15b1a3?q=80&w=200&h=200&fit=crop"},
			},
		},
		{
			Name:            "Happy Tails Dog Daycare",
			Type:            models.ServiceDaycare,
			ServicesOffered: datatypes.NewJSONSlice([]string{"Full Day Care", "Half Day Care", "Overnight Boarding"}),
			Location:        "Sunnyvale, CA",
			Phone:           "555-0301",
			Email:           "play@happytails.com",
			Rating:          4.9,
			WorkStart:       "07:00",
			WorkEnd:         "19:00",
			SlotDuration:    60,
			About:           "A safe and fun environment for dogs to play, socialize, and burn off energy under the supervision of our trained staff.",
			Amenities:       datatypes.NewJSONSlice([]string{"Large Indoor Play Area", "Supervised Outdoor Yard", "Live Webcams", "Nap Time in Crates"}),
			BusinessPolicies: "All dogs must pass a temperament test before their first day. " +
				"Proof of vaccination for Rabies, DHLPP, and Bordetella is required.",
		},
		{
			Name:            "Greenfield Pet Wellness",
			Type:            models.ServiceVet,
			ServicesOffered: datatypes.NewJSONSlice([]string{"Holistic Care", "Acupuncture", "Checkups"}),
			Location:        "Palo Alto, CA",
			Phone:           "555-0103",
			Email:           "support@greenfieldpet.com",
			Rating:          4.9,
			WorkStart:       "10:00",
			WorkEnd:         "16:00",
			SlotDuration:    60,
			About:           "A holistic approach to pet wellness. We integrate conventional and alternative therapies to promote healing.",
			Amenities:       datatypes.NewJSONSlice([]string{"Pet Acupuncture", "Herbal Medicine", "Nutritional Counseling", "Aromatherapy"}),
		},
	}
	for i := range providers {
		DB.Create(&providers[i])
	}
}

func seedAppointments() {
	var count int64
	DB.Model(&models.Appointment{}).Count(&count)
	if count > 0 {
		return
	}

	now := time.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	nextWeek := time.Date(now.Year(), now.Month(), now.Day(), 14, 30, 0, 0, now.Location()).AddDate(0, 0, 7)
	lastWeek := now.AddDate(0, 0, -7)

	appointments := []models.Appointment{
		{
			Reference: "appt-demo-01", OwnerID: 1, PetID: 1, ProviderID: 3,
			Service: "Full Groom", Status: models.StatusConfirmed,
			StartTime: tomorrow, EndTime: tomorrow.Add(90 * time.Minute),
			OwnerNotes: "Buddy can be a little nervous around dryers.",
		},
		{
			Reference: "appt-demo-02", OwnerID: 1, PetID: 2, ProviderID: 1,
			Service: "Annual Checkup", Status: models.StatusConfirmed,
			StartTime: nextWeek, EndTime: nextWeek.Add(30 * time.Minute),
		},
		{
			Reference: "appt-demo-03", OwnerID: 1, PetID: 1, ProviderID: 4,
			Service: "Overnight Boarding", Status: models.StatusCompleted,
			StartTime: lastWeek, EndTime: lastWeek.AddDate(0, 0, 2),
			ProviderNotes: "Buddy had a great time playing with the other large dogs!",
		},
		{
			Reference: "appt-demo-04", OwnerID: 2, PetID: 3, ProviderID: 1,
			Service: "Annual Checkup", Status: models.StatusCompleted,
			StartTime: now.AddDate(0, 0, -14), EndTime: now.AddDate(0, 0, -14).Add(30 * time.Minute),
			ProviderNotes: "Rocky seems to have a sensitive stomach. Recommended a diet change.",
		},
	}
	for i := range appointments {
		DB.Create(&appointments[i])
	}
}

func seedProducts() {
	var count int64
	DB.Model(&models.Product{}).Count(&count)
	if count > 0 {
		return
	}

	products := []models.Product{
		{Name: "Premium Natural Dog Food", Description: "High-protein, grain-free formula for adult dogs.", Price: 59.99, Category: models.CategoryPetFood, ImageURL: "https://images.unsplash.com/photo-1587300003487-449746238b76?q=80&w=600&h=600&fit=crop"},
		{Name: "Gourmet Cat Pâté Variety Pack", Description: "Real salmon and tuna in a delicious pâté for picky eaters.", Price: 24.99, Category: models.CategoryPetFood, ImageURL: "https://images.unsplash.com/photo-1627826555694-b9a5b3a4f6b0?q=80&w=600&h=600&fit=crop"},
		{Name: "Indestructible Squeaky Ball", Description: "Durable rubber ball that stands up to heavy chewers.", Price: 12.99, Category: models.CategoryToys, ImageURL: "https://images.unsplash.com/photo-1597853482563-346c1a85117f?q=80&w=600&h=600&fit=crop"},
		{Name: "Catnip Feather Wand", Description: "Interactive wand with natural feathers to engage your cat.", Price: 7.99, Category: models.CategoryToys, ImageURL: "https://images.unsplash.com/photo-1599591436350-f4d43e7de71b?q=80&w=600&h=600&fit=crop"},
		{Name: "Adjustable Nylon Dog Collar", Description: "Durable and comfortable collar for everyday use.", Price: 14.99, Category: models.CategoryDogSupplies, ImageURL: "https://images.unsplash.com/photo-1605330364983-4905f31971f8?q=80&w=600&h=600&fit=crop"},
		{Name: "Cozy Orthopedic Dog Bed", Description: "Memory foam bed to support joints and provide maximum comfort.", Price: 89.99, Category: models.CategoryDogSupplies, ImageURL: "https://images.unsplash.com/photo-1528183429752-a97d0bfd377b?q=80&w=600&h=600&fit=crop"},
		{Name: "Modern Cat Tree Tower", Description: "Multi-level cat tree with scratching posts and a cozy condo.", Price: 129.99, Category: models.CategoryCatSupplies, ImageURL: "https://images.unsplash.com/photo-1595433231364-f05045437637?q=80&w=600&h=600&fit=crop"},
		{Name: "Self-Cleaning Litter Box", Description: "Automatic litter box that does the scooping for you.", Price: 149.99, Category: models.CategoryCatSupplies, ImageURL: "https://images.unsplash.com/photo-1620579294523-23321568264a?q=80&w=600&h=600&fit=crop"},
		{Name: "10-Gallon Aquarium Kit", Description: "Includes glass tank, LED hood, quiet filter, and setup guide.", Price: 79.99, Category: models.CategoryFishAquatics, ImageURL: "https://images.unsplash.com/photo-1611095966436-57c211516b9b?q=80&w=600&h=600&fit=crop"},
		{Name: "Timothy Hay for Small Animals", Description: "High-fiber, sun-cured hay for rabbits, guinea pigs, and chinchillas.", Price: 15.99, Category: models.CategorySmallAnimals, ImageURL: "https://images.unsplash.com/photo-1629219321947-193a02ef496f?q=80&w=600&h=600&fit=crop"},
		{Name: "De-Shedding Brush", Description: "Reduces shedding by up to 95% with a stainless steel edge.", Price: 24.99, Category: models.CategoryGrooming, ImageURL: "https://images.unsplash.com/photo-1626583005089-a764a1377a06?q=80&w=600&h=600&fit=crop"},
		{Name: "Joint Support Chews for Dogs", Description: "Tasty soft chews with glucosamine for hip and joint health.", Price: 29.99, Category: models.CategoryHealth, ImageURL: "https://images.unsplash.com/photo-1605030465548-c8a7f05a9f5f?q=80&w=600&h=600&fit=crop"},
		{Name: "Pet First-Aid Kit", Description: "100-piece kit with essential supplies for common pet emergencies.", Price: 34.99, Category: models.CategoryHealth, ImageURL: "https://images.unsplash.com/photo-1603398938378-e54eab446dde?q=80&w=600&h=600&fit=crop"},
	}
	for i := range products {
		DB.Create(&products[i])
	}
}

func seedTutorials() {
	var count int64
	DB.Model(&models.Tutorial{}).Count(&count)
	if count > 0 {
		return
	}

	tutorials := []models.Tutorial{
		{
			Category: "Grooming",
			Title:    "How to Trim Your Dog's Nails Safely",
			Content:  "1. Gather your tools: nail clippers and styptic powder.\n2. Hold your dog's paw firmly but gently.\n3. Trim only the tip of the nail, avoiding the quick.\n4. If you cut the quick, apply styptic powder to stop bleeding.\n5. Praise your dog and offer a treat afterwards.",
		},
		{
			Category: "First Aid",
			Title:    "Basic First Aid for Minor Cuts",
			Content:  "1. Clean the wound with mild soap and water.\n2. Apply gentle pressure with a clean cloth to stop any bleeding.\n3. Apply a pet-safe antiseptic ointment.\n4. Cover with a loose bandage if necessary, but ensure your pet cannot ingest it.\n5. Monitor for signs of infection.",
		},
		{
			Category: "Diet & Nutrition",
			Title:    "Choosing the Right Food for Your Cat",
			Content:  "Consider your cat's age, activity level, and health conditions. Look for foods with a named meat source as the first ingredient. Avoid fillers like corn and soy. Both wet and dry food have benefits; a combination can be ideal. Consult your vet for personalized recommendations.",
		},
	}
	for i := range tutorials {
		DB.Create(&tutorials[i])
	}
}

func seedMeetups() {
	var count int64
	DB.Model(&models.Meetup{}).Count(&count)
	if count > 0 {
		return
	}

	meetups := []models.Meetup{
		{
			OrganizerName: "Pet Paradise Community", Title: "Golden Retriever Romp in the Park",
			Location: "Central Park Meadows", Date: "2024-08-15", Time: "10:00 AM",
			Description: "A fun morning for all Golden Retrievers to play and socialize. Bring your favorite toys!",
			PetSpecies:  datatypes.NewJSONSlice([]string{string(models.SpeciesDog)}), InterestedCount: 12,
		},
		{
			OrganizerName: "Pet Paradise Community", Title: "Small Dog Social Hour",
			Location: "Sunnyvale Dog Park (Small Dog Area)", Date: "2024-08-18", Time: "4:00 PM",
			Description: "An exclusive event for our smaller furry friends to meet and greet in a safe environment.",
			PetSpecies:  datatypes.NewJSONSlice([]string{string(models.SpeciesDog)}), InterestedCount: 8,
		},
		{
			OrganizerID: 1, OrganizerName: "Sarah", Title: "Caturday Cafe Mixer",
			Location: "The Purrfect Cup Cafe", Date: "2024-08-20", Time: "2:00 PM",
			Description: "Cat owners unite! Share stories and tips while your feline friends enjoy a cat-friendly space.",
			PetSpecies:  datatypes.NewJSONSlice([]string{string(models.SpeciesCat)}), InterestedCount: 15,
		},
	}
	for i := range meetups {
		DB.Create(&meetups[i])
	}
}
