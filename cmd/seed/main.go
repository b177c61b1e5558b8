package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/openpress/openpress/internal/domain"
	"github.com/openpress/openpress/internal/repository/sqlite"
)

// seedPassword is the shared password for all generated accounts.
const seedPassword = "123456"

var firstNames = []string{
	"ada", "grace", "alan", "edsger", "barbara", "donald", "leslie", "ken",
	"dennis", "margaret", "tim", "linus", "rob", "brian", "frances", "radia",
}

var lastNames = []string{
	"rivers", "stone", "hale", "mercer", "bloom", "fox", "vance", "quill",
	"archer", "frost", "lane", "hart", "byrd", "shaw", "reed", "cole",
}

var titlePrefixes = []string{
	"Mastering", "The Ultimate Guide to", "Best Practices for", "Building Scalable",
	"A Deep Dive into", "Exploring Modern", "From Beginner to Pro:", "Understanding",
}

var titleSubjects = []string{
	"React State Management", "Node.js Authentication", "Modern CSS Layouts",
	"API Design with Express", "Database Optimization", "Frontend Performance",
	"Asynchronous JavaScript", "DevOps with Docker", "Serverless Architecture",
}

var intros = []string{
	"In this comprehensive guide, we'll dive deep into the core concepts.",
	"Today, we're exploring the cutting-edge trends that are shaping the future of web development.",
	"Ever wondered how a simple idea can evolve into a robust, production-ready application? Let's find out.",
	"Performance optimization is no longer a luxury; it's a necessity. Here's how you can achieve it.",
	"Let's break down the fundamentals of modern web development, starting with the basics.",
}

var bodies = []string{
	"The key to a maintainable codebase lies in a modular and component-based architecture. This approach not only simplifies debugging but also accelerates the development process.",
	"Asynchronous programming can be daunting, but with a solid grasp of the primitives it becomes manageable. We'll walk through practical examples to demystify these concepts.",
	"Adopting a test-driven development approach can significantly reduce bugs and improve code quality over time, ensuring your application is robust and reliable.",
	"A strong understanding of RESTful API design principles is crucial for building a scalable backend that can support a growing user base and multiple frontend applications.",
	"The open-source community is a treasure trove of resources. Contributing to or learning from it is one of the best ways to grow as a developer.",
}

var tagPool = []string{
	"javascript", "golang", "webdev", "tutorial", "backend", "frontend",
	"devops", "databases", "performance", "architecture",
}

func main() {
	dbPath := flag.String("db", "openpress.db", "path to the SQLite database")
	userCount := flag.Int("users", 100, "number of fake users to create")
	postCount := flag.Int("posts", 50, "number of sample posts to create")
	wipe := flag.Bool("wipe", false, "delete existing posts before seeding")
	flag.Parse()

	ctx := context.Background()

	db, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if *wipe {
		if err := db.WipeContent(ctx); err != nil {
			log.Fatalf("wipe posts: %v", err)
		}
		log.Println("cleared existing posts")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.MinCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	users := db.Users()
	var userIDs []int64
	for i := 0; i < *userCount; i++ {
		first := firstNames[rand.Intn(len(firstNames))]
		last := lastNames[rand.Intn(len(lastNames))]
		username := fmt.Sprintf("%s_%s%d", first, last, i)

		u := &domain.User{
			Username:     username,
			Email:        username + "@example.com",
			PasswordHash: string(hash),
		}
		err := users.Create(ctx, u)
		if errors.Is(err, domain.ErrDuplicateUsername) || errors.Is(err, domain.ErrDuplicateEmail) {
			continue
		}
		if err != nil {
			log.Fatalf("create user %s: %v", username, err)
		}
		userIDs = append(userIDs, u.ID)
	}
	log.Printf("seeded %d users (password %q)", len(userIDs), seedPassword)

	if len(userIDs) == 0 {
		log.Fatal("no users available to author posts; seed users first")
	}

	posts := db.Posts()
	for i := 0; i < *postCount; i++ {
		title := fmt.Sprintf("%s %s",
			titlePrefixes[rand.Intn(len(titlePrefixes))],
			titleSubjects[rand.Intn(len(titleSubjects))])
		content := strings.Join([]string{
			intros[rand.Intn(len(intros))],
			bodies[rand.Intn(len(bodies))],
			bodies[rand.Intn(len(bodies))],
		}, "\n\n")

		tags := make([]string, 0, 3)
		for _, t := range rand.Perm(len(tagPool))[:1+rand.Intn(3)] {
			tags = append(tags, tagPool[t])
		}

		p := &domain.Post{
			Title:    title,
			Content:  content,
			Tags:     tags,
			AuthorID: userIDs[rand.Intn(len(userIDs))],
		}
		if err := posts.Create(ctx, p); err != nil {
			log.Fatalf("create post %q: %v", title, err)
		}
	}
	log.Printf("seeded %d posts", *postCount)
}
