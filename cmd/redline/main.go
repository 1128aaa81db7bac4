// cmd/redline/main.go
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dangerclosesec/redline/internal/auth"
	"github.com/dangerclosesec/redline/internal/model"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(useraddCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "redline",
	Short: "Redline is a CLI tool for administering the assessment tracker",
	Long:  `Redline manages the data element catalog and operator accounts for the assessment tracking service.`,
}

// catalogEntry is one row of the built-in data element catalog.
type catalogEntry struct {
	name     string
	category model.DataCategory
	weight   float64
}

// defaultCatalog is the seed catalog of weighted data elements. Weights feed
// the data sensitivity value computation.
var defaultCatalog = []catalogEntry{
	{"First Name", model.CategoryPersonal, 2},
	{"Last Name", model.CategoryGlobal, 10},
	{"Gender", model.CategoryPersonal, 3},
	{"Age", model.CategoryPersonal, 15},
	{"Date of Birth", model.CategoryPersonal, 20},
	{"Email Address", model.CategoryPersonal, 10},
	{"Phone Number", model.CategoryPersonal, 10},
	{"Home Address", model.CategoryPersonal, 25},
	{"Social Security Number", model.CategoryGovernment, 100},
	{"Passport Number", model.CategoryGovernment, 80},
	{"Driver License Number", model.CategoryGovernment, 60},
	{"Education History", model.CategoryPersonal, 100},
	{"Student ID", model.CategoryStudent, 40},
	{"Enrollment Records", model.CategoryStudent, 60},
	{"Grades", model.CategoryStudent, 50},
	{"Primary Account Number", model.CategoryPCI, 120},
	{"Card Expiration Date", model.CategoryPCI, 30},
	{"Card Verification Value", model.CategoryPCI, 150},
	{"Diagnosis Codes", model.CategoryMedical, 120},
	{"Prescription History", model.CategoryMedical, 100},
	{"Insurance Member ID", model.CategoryMedical, 60},
	{"Internal Revenue Figures", model.CategoryCompany, 40},
	{"Source Code", model.CategoryCompany, 50},
	{"Employee Salaries", model.CategoryCompany, 60},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the data element catalog",
	Long:  `Seed inserts the built-in data element catalog, updating weights for entries that already exist.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openDatabase()
		defer db.Close()

		upsert := `
			INSERT INTO data_elements (name, category, weight)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO UPDATE SET category = EXCLUDED.category, weight = EXCLUDED.weight`

		inserted := 0
		for _, entry := range defaultCatalog {
			if _, err := db.Exec(upsert, entry.name, string(entry.category), entry.weight); err != nil {
				log.Fatalf("Failed to seed %q: %v", entry.name, err)
			}
			inserted++
			if verbose {
				fmt.Printf("  %-28s %-12s %6.1f\n", entry.name, entry.category, entry.weight)
			}
		}

		fmt.Printf("Seeded %d data elements\n", inserted)
	},
}

var useraddCmd = &cobra.Command{
	Use:   "useradd [email] [name] [password]",
	Short: "Create an operator account",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		email, name, password := args[0], args[1], args[2]

		hasher := auth.NewPasswordHasher()
		hash, err := hasher.Hash(password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		db := openDatabase()
		defer db.Close()

		var id string
		err = db.QueryRow(`
			INSERT INTO users (email, name, password_hash)
			VALUES ($1, $2, $3)
			RETURNING id`, email, name, hash).Scan(&id)
		if err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}

		fmt.Printf("Created user %s (%s)\n", email, id)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("redline v0.1.0")
	},
}

func openDatabase() *sql.DB {
	connString := dbConnString
	if connString == "" {
		connString = os.Getenv("DATABASE_URL")
	}
	if connString == "" {
		log.Fatal("No database connection string provided. Use --db or set DATABASE_URL.")
	}

	db, err := sql.Open("postgres", connString)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	db.SetConnMaxLifetime(time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
