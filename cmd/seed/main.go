package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"xplorium/internal/bookings"
	"xplorium/internal/content"
	"xplorium/internal/events"
	"xplorium/internal/packages"
	"xplorium/internal/shared/config"
	"xplorium/internal/shared/database"
	"xplorium/internal/users"
)

type Seeder struct {
	db  *database.DB
	rng *rand.Rand
}

func main() {
	fmt.Println("🌱 Starting Xplorium Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db.GetPostgreSQL()); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	// Fixed seed keeps reruns reproducible
	seeder := &Seeder{db: db, rng: rand.New(rand.NewSource(42))}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"bookings",
		"notification_preferences",
		"content_blocks",
		"events",
		"packages",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	adminID, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	packageIDs, err := s.SeedPackages()
	if err != nil {
		return fmt.Errorf("failed to seed packages: %w", err)
	}

	eventIDs, err := s.SeedEvents(adminID)
	if err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	if err := s.SeedContentBlocks(adminID); err != nil {
		return fmt.Errorf("failed to seed content blocks: %w", err)
	}

	if err := s.SeedBookings(packageIDs, eventIDs); err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedUsers creates 1 admin and 2 regular users
func (s *Seeder) SeedUsers() (uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty123"), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"Admin", "User", "admin@xplorium.dev", users.RoleAdmin},
		{"Sam", "Parker", "sam.parker@example.com", users.RoleUser},
		{"Alex", "Reid", "alex.reid@example.com", users.RoleUser},
	}

	var adminID uuid.UUID
	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return uuid.Nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		if user.Role == users.RoleAdmin {
			adminID = user.ID
		}
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return adminID, nil
}

// SeedPackages creates one pricing package per venue area
func (s *Seeder) SeedPackages() (map[bookings.Type]uuid.UUID, error) {
	fmt.Println("  🎟️ Seeding packages...")

	packagesData := []struct {
		name        string
		description string
		bookingType bookings.Type
		price       float64
		capacity    int
	}{
		{"Cafe Table", "Reserved cafe table for up to 6 guests", bookings.TypeCafe, 15.00, 6},
		{"Sensory Room Session", "Private 90 minute sensory room session", bookings.TypeSensoryRoom, 45.00, 8},
		{"Playground Entry", "Open play session on the main playground", bookings.TypePlayground, 12.50, 40},
		{"Birthday Party Package", "Two hour party with a dedicated host and party room", bookings.TypeParty, 249.00, 20},
		{"Event Admission", "Admission to a scheduled venue event", bookings.TypeEvent, 25.00, 60},
	}

	packageIDs := make(map[bookings.Type]uuid.UUID)
	for _, pkgData := range packagesData {
		pkg := packages.Package{
			ID:          uuid.New(),
			Name:        pkgData.name,
			Description: pkgData.description,
			BookingType: pkgData.bookingType,
			Price:       pkgData.price,
			Capacity:    pkgData.capacity,
			Active:      true,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&pkg).Error; err != nil {
			return nil, fmt.Errorf("failed to create package %s: %w", pkg.Name, err)
		}

		packageIDs[pkg.BookingType] = pkg.ID
		fmt.Printf("    ✅ Created package: %s (%.2f)\n", pkg.Name, pkg.Price)
	}

	return packageIDs, nil
}

// SeedEvents creates a mix of published, draft and completed events
func (s *Seeder) SeedEvents(adminID uuid.UUID) ([]uuid.UUID, error) {
	fmt.Println("  🎪 Seeding events...")

	now := time.Now()
	eventsData := []struct {
		name        string
		description string
		dateTime    time.Time
		capacity    int
		price       float64
		status      events.Status
	}{
		{"Dino Discovery Day", "Fossil digs and dinosaur crafts for ages 4-10", now.AddDate(0, 0, 14), 60, 25.00, events.StatusPublished},
		{"Toddler Sensory Morning", "Quiet-hours session with adapted lighting and sound", now.AddDate(0, 0, 7), 25, 18.00, events.StatusPublished},
		{"Science Spectacular", "Live experiments and a build-your-own-rocket corner", now.AddDate(0, 1, 0), 80, 30.00, events.StatusPublished},
		{"Halloween Monster Mash", "Costume party with games and a spooky treasure hunt", now.AddDate(0, 2, 0), 100, 28.00, events.StatusDraft},
		{"Summer Splash Finale", "Season closing water play celebration", now.AddDate(0, 0, -30), 90, 22.00, events.StatusCompleted},
	}

	var eventIDs []uuid.UUID
	for _, eventData := range eventsData {
		event := events.Event{
			ID:          uuid.New(),
			Name:        eventData.name,
			Description: eventData.description,
			DateTime:    eventData.dateTime,
			Capacity:    eventData.capacity,
			Price:       eventData.price,
			Status:      eventData.status,
			CreatedBy:   adminID,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&event).Error; err != nil {
			return nil, fmt.Errorf("failed to create event %s: %w", event.Name, err)
		}

		if event.Status == events.StatusPublished {
			eventIDs = append(eventIDs, event.ID)
		}
		fmt.Printf("    ✅ Created event: %s (%s)\n", event.Name, event.Status)
	}

	return eventIDs, nil
}

// SeedContentBlocks creates the public CMS pages
func (s *Seeder) SeedContentBlocks(adminID uuid.UUID) error {
	fmt.Println("  📄 Seeding content blocks...")

	blocksData := []struct {
		slug      string
		title     string
		body      string
		published bool
	}{
		{"opening-hours", "Opening Hours", "Monday to Friday: 9:00 - 18:00\nSaturday and Sunday: 9:00 - 20:00", true},
		{"party-packages", "Party Packages", "Celebrate with us! Our party rooms host up to 20 children with a dedicated host, food and drinks included.", true},
		{"sensory-room", "The Sensory Room", "A calm, adaptive space with adjustable lighting, textures and sound. Sessions are private and bookable in 90 minute slots.", true},
		{"faq", "Frequently Asked Questions", "Do adults pay entry? Accompanying adults enter free with a paying child.", true},
		{"winter-closure", "Winter Closure Notice", "Draft notice for the January deep-clean closure dates.", false},
	}

	for _, blockData := range blocksData {
		block := content.Block{
			ID:        uuid.New(),
			Slug:      blockData.slug,
			Title:     blockData.title,
			Body:      blockData.body,
			Published: blockData.published,
			CreatedBy: adminID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&block).Error; err != nil {
			return fmt.Errorf("failed to create content block %s: %w", block.Slug, err)
		}
		fmt.Printf("    ✅ Created content block: %s\n", block.Slug)
	}

	return nil
}

// SeedBookings generates a year of synthetic bookings. Weekends run busier
// than weekdays so the peak-day analytics have something to find.
func (s *Seeder) SeedBookings(packageIDs map[bookings.Type]uuid.UUID, eventIDs []uuid.UUID) error {
	fmt.Println("  📅 Seeding bookings...")

	firstNames := []string{"Olivia", "Noah", "Amelia", "Leo", "Isla", "Oscar", "Freya", "Arthur", "Ivy", "George"}
	lastNames := []string{"Smith", "Jones", "Taylor", "Brown", "Wilson", "Evans", "Walker", "Wright", "Hughes", "Green"}
	slots := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}

	now := time.Now()
	start := now.AddDate(-1, 0, 0)
	total := 0

	for day := start; day.Before(now.AddDate(0, 0, 21)); day = day.AddDate(0, 0, 1) {
		perDay := 2 + s.rng.Intn(3)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			perDay += 3 + s.rng.Intn(4)
		}

		for i := 0; i < perDay; i++ {
			bookingType := bookings.AllTypes[s.rng.Intn(len(bookings.AllTypes))]
			first := firstNames[s.rng.Intn(len(firstNames))]
			last := lastNames[s.rng.Intn(len(lastNames))]

			booking := bookings.Booking{
				ID:            uuid.New(),
				CustomerName:  fmt.Sprintf("%s %s", first, last),
				CustomerEmail: fmt.Sprintf("%s.%s%d@example.com", first, last, s.rng.Intn(1000)),
				Type:          bookingType,
				Status:        s.statusFor(day, now),
				Date:          day,
				Time:          slots[s.rng.Intn(len(slots))],
				PartySize:     1 + s.rng.Intn(8),
				CreatedAt:     day.AddDate(0, 0, -(1 + s.rng.Intn(14))),
				UpdatedAt:     day,
			}

			if id, ok := packageIDs[bookingType]; ok {
				booking.PackageID = &id
			}
			if bookingType == bookings.TypeEvent && len(eventIDs) > 0 {
				eventID := eventIDs[s.rng.Intn(len(eventIDs))]
				booking.EventID = &eventID
			}

			if err := s.db.PostgreSQL.Create(&booking).Error; err != nil {
				return fmt.Errorf("failed to create booking: %w", err)
			}
			total++
		}
	}

	fmt.Printf("    ✅ Created %d bookings\n", total)
	return nil
}

// statusFor picks a realistic lifecycle state for a booking on the given day.
// Past bookings are settled, upcoming ones are still mostly pending or approved.
func (s *Seeder) statusFor(day, now time.Time) bookings.Status {
	roll := s.rng.Intn(100)
	if day.Before(now) {
		switch {
		case roll < 70:
			return bookings.StatusCompleted
		case roll < 85:
			return bookings.StatusCancelled
		case roll < 95:
			return bookings.StatusRejected
		default:
			return bookings.StatusApproved
		}
	}
	switch {
	case roll < 45:
		return bookings.StatusPending
	case roll < 85:
		return bookings.StatusApproved
	case roll < 95:
		return bookings.StatusCancelled
	default:
		return bookings.StatusRejected
	}
}
