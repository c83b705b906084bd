package seeder

import (
	"context"
	"fmt"
	"time"

	"hire-flow/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// DemoSeeder loads a small employer workspace: one employer account, one
// posting, and a handful of applicants spread across statuses. Idempotent;
// rows key on fixed emails and ON CONFLICT DO NOTHING.
type DemoSeeder struct{}

func (DemoSeeder) Name() string { return "demo" }

type demoApplicant struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Skills   []string
	Status   string
	Applied  time.Duration

	ExperienceTitle   string
	ExperienceCompany string
	Degree            string
	School            string
}

func (DemoSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "password_hash", "role", "skills"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "employer_id", "title", "required_skills"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "applications", "id", "job_id", "user_id", "status"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role)
		 VALUES (gen_random_uuid(), 'Demo Employer', 'employer@hire-flow.local', $1, 'employer')
		 ON CONFLICT (email) DO NOTHING`,
		string(hash),
	); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO jobs (id, employer_id, title, status, delivery_mode, salary, required_skills)
		 SELECT gen_random_uuid(), u.id, 'Backend Engineer', 'active', 'remote', 'negotiable',
		        ARRAY['Go', 'PostgreSQL', 'Redis']
		 FROM users u
		 WHERE u.email = 'employer@hire-flow.local'
		   AND NOT EXISTS (
		       SELECT 1 FROM jobs j WHERE j.employer_id = u.id AND j.title = 'Backend Engineer'
		   )`,
	); err != nil {
		return err
	}

	applicants := []demoApplicant{
		{
			Name: "Alice Tan", Email: "alice@applicants.local", Phone: "+62 811 0001",
			Location: "Jakarta", Skills: []string{"Go", "PostgreSQL", "Docker"},
			Status: "New", Applied: 24 * time.Hour,
			ExperienceTitle: "Backend Developer", ExperienceCompany: "Acme",
			Degree: "BSc Computer Science", School: "Universitas Indonesia",
		},
		{
			Name: "Budi Santoso", Email: "budi@applicants.local", Phone: "+62 811 0002",
			Location: "Bandung", Skills: []string{"Go", "Redis"},
			Status: "Reviewing", Applied: 48 * time.Hour,
			ExperienceTitle: "Software Engineer", ExperienceCompany: "Globex",
			Degree: "BEng Informatics", School: "ITB",
		},
		{
			Name: "Citra Dewi", Email: "citra@applicants.local",
			Location: "Surabaya", Skills: []string{"JavaScript", "TypeScript"},
			Status: "Shortlisted", Applied: 72 * time.Hour,
			ExperienceTitle: "Fullstack Developer", ExperienceCompany: "Initech",
			Degree: "BSc Information Systems", School: "ITS",
		},
		{
			// Legacy free-text status exercises the keyword fallback.
			Name: "Dimas Putra", Email: "dimas@applicants.local",
			Skills: []string{"Go", "Kubernetes"},
			Status: "phone interview scheduled", Applied: 96 * time.Hour,
		},
		{
			Name: "Eka Lestari", Email: "eka@applicants.local",
			Location: "Yogyakarta", Skills: []string{"PostgreSQL"},
			Status: "Rejected", Applied: 120 * time.Hour,
		},
	}

	for _, a := range applicants {
		if _, err := tx.Exec(ctx,
			`INSERT INTO users (id, name, email, password_hash, phone, location, skills, role)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, 'seeker')
			 ON CONFLICT (email) DO NOTHING`,
			a.Name, a.Email, string(hash), a.Phone, a.Location, a.Skills,
		); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO applications (id, job_id, user_id, status, created_at, updated_at)
			 SELECT gen_random_uuid(), j.id, u.id, $1, now() - $2::interval, now() - $2::interval
			 FROM users u
			 JOIN jobs j ON j.title = 'Backend Engineer'
			 WHERE u.email = $3
			 ON CONFLICT (job_id, user_id) DO NOTHING`,
			a.Status, fmt.Sprintf("%d hours", int(a.Applied.Hours())), a.Email,
		); err != nil {
			return err
		}

		if a.ExperienceTitle != "" {
			if _, err := tx.Exec(ctx,
				`INSERT INTO work_experiences (id, user_id, title, company, start_date)
				 SELECT gen_random_uuid(), u.id, $1, $2, now() - interval '2 years'
				 FROM users u
				 WHERE u.email = $3
				   AND NOT EXISTS (SELECT 1 FROM work_experiences w WHERE w.user_id = u.id)`,
				a.ExperienceTitle, a.ExperienceCompany, a.Email,
			); err != nil {
				return err
			}
		}

		if a.Degree != "" {
			if _, err := tx.Exec(ctx,
				`INSERT INTO education (id, user_id, degree, school, start_date, end_date)
				 SELECT gen_random_uuid(), u.id, $1, $2, now() - interval '6 years', now() - interval '2 years'
				 FROM users u
				 WHERE u.email = $3
				   AND NOT EXISTS (SELECT 1 FROM education e WHERE e.user_id = u.id)`,
				a.Degree, a.School, a.Email,
			); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

func Defaults() []Seeder {
	return []Seeder{DemoSeeder{}}
}
