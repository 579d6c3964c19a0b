package seed

import (
	"plume/internal/middleware"
	"plume/internal/models"

	"gorm.io/gorm"
)

// Demo populates a development database with a realistic slice of data:
// a handful of groups, a few dozen users, posts spread across groups and
// authors, comments, and a sparse follow graph.
func Demo(db *gorm.DB) error {
	f := NewFactory(db)

	groups := make([]*models.Group, 0, 4)
	for i := 0; i < 4; i++ {
		g, err := f.CreateGroup()
		if err != nil {
			return err
		}
		groups = append(groups, g)
	}

	users := make([]*models.User, 0, 20)
	for i := 0; i < 20; i++ {
		u, err := f.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, u)
	}

	posts := make([]*models.Post, 0, 120)
	for _, u := range users {
		n := f.rng.Intn(10) + 2
		for i := 0; i < n; i++ {
			overrides := []func(*models.Post){}
			// Roughly half the posts land in a group.
			if f.rng.Intn(2) == 0 {
				g := groups[f.rng.Intn(len(groups))]
				overrides = append(overrides, func(p *models.Post) { p.GroupID = &g.ID })
			}
			p, err := f.CreatePost(u, overrides...)
			if err != nil {
				return err
			}
			posts = append(posts, p)
		}
	}

	for _, p := range posts {
		for i := 0; i < f.rng.Intn(4); i++ {
			commenter := users[f.rng.Intn(len(users))]
			if _, err := f.CreateComment(p, commenter); err != nil {
				return err
			}
		}
	}

	for _, u := range users {
		for i := 0; i < f.rng.Intn(6); i++ {
			author := users[f.rng.Intn(len(users))]
			if err := f.CreateFollow(u, author); err != nil {
				return err
			}
		}
	}

	middleware.Logger.Info("seeded demo data",
		"groups", len(groups), "users", len(users), "posts", len(posts))
	return nil
}
