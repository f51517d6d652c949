// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"quill/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers  int
	NumGroups int
	NumPosts  int
}

// Seeder populates a development database with plausible content.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder returns a Seeder over the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll truncates every domain table. Development only.
func (s *Seeder) ClearAll() error {
	return s.db.Exec("TRUNCATE TABLE follows, comments, posts, groups, users CASCADE").Error
}

// Run seeds users, groups, posts, comments and follow edges.
func (s *Seeder) Run(opts Options) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := make([]*models.User, 0, opts.NumUsers+1)

	admin := &models.User{
		Username: "admin",
		Email:    "admin@quill.local",
		Password: string(hashed),
		IsAdmin:  true,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	users = append(users, admin)

	for i := 0; i < opts.NumUsers; i++ {
		u := &models.User{
			Username: strings.ToLower(gofakeit.Username()) + fmt.Sprint(i),
			Email:    gofakeit.Email(),
			Password: string(hashed),
			Bio:      gofakeit.Sentence(8),
		}
		if err := s.db.Create(u).Error; err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, u)
	}

	groups := make([]*models.Group, 0, opts.NumGroups)
	for i := 0; i < opts.NumGroups; i++ {
		word := strings.ToLower(gofakeit.HackerNoun())
		g := &models.Group{
			Title:       gofakeit.BookTitle(),
			Slug:        fmt.Sprintf("%s-%d", word, i),
			Description: gofakeit.Sentence(12),
		}
		if err := s.db.Create(g).Error; err != nil {
			return fmt.Errorf("seed group: %w", err)
		}
		groups = append(groups, g)
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		p := &models.Post{
			Text:     gofakeit.Paragraph(1, 3, 12, " "),
			AuthorID: users[rand.Intn(len(users))].ID,
			// Spread publication times so feeds page through a real history.
			CreatedAt: time.Now().Add(-time.Duration(rand.Intn(60*24*30)) * time.Minute),
		}
		if len(groups) > 0 && rand.Intn(3) != 0 {
			p.GroupID = &groups[rand.Intn(len(groups))].ID
		}
		if rand.Intn(4) == 0 {
			p.ImageURL = "/media/posts/" + uuid.NewString() + ".jpg"
		}
		if err := s.db.Create(p).Error; err != nil {
			return fmt.Errorf("seed post: %w", err)
		}
		posts = append(posts, p)
	}

	for _, p := range posts {
		for i := 0; i < rand.Intn(4); i++ {
			c := &models.Comment{
				Text:     gofakeit.Sentence(10),
				AuthorID: users[rand.Intn(len(users))].ID,
				PostID:   p.ID,
			}
			if err := s.db.Create(c).Error; err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}
	}

	edges := 0
	for _, follower := range users {
		for i := 0; i < rand.Intn(5); i++ {
			author := users[rand.Intn(len(users))]
			if author.ID == follower.ID {
				continue
			}
			edge := &models.Follow{FollowerID: follower.ID, AuthorID: author.ID}
			// Duplicate edges are rejected by the unique index; skip them.
			if err := s.db.Create(edge).Error; err != nil {
				continue
			}
			edges++
		}
	}

	log.Printf("Seeded %d users, %d groups, %d posts, %d follow edges",
		len(users), len(groups), len(posts), edges)
	return nil
}
