package memory

import (
	"context"
	"time"

	"skillsphere/internal/models/db_models"
)

// accounts --------------------------------------------------------------------

type accounts struct{ v view }

func (r accounts) CreateUser(_ context.Context, user *db_models.User) error {
	return r.v.do("users.CreateUser", func(d *state) error {
		for _, u := range d.users {
			if u.Username == user.Username {
				return duplicate("users.username")
			}
		}
		_ = user.BeforeCreate(nil)
		if _, taken := d.users[user.ID]; taken {
			return duplicate("users.id")
		}
		user.ID = d.assignID(user.ID)
		d.users[user.ID] = *user
		return nil
	})
}

func (r accounts) FindUserById(_ context.Context, id uint) (*db_models.User, error) {
	var out *db_models.User
	err := r.v.do("users.FindUserById", func(d *state) error {
		if u, ok := d.users[id]; ok {
			out = &u
		}
		return nil
	})
	return out, err
}

func (r accounts) FindUserByIdForUpdate(ctx context.Context, id uint) (*db_models.User, error) {
	return r.FindUserById(ctx, id)
}

func (r accounts) FindUserByUsername(_ context.Context, username string) (*db_models.User, error) {
	var out *db_models.User
	err := r.v.do("users.FindUserByUsername", func(d *state) error {
		for _, u := range d.users {
			if u.Username == username {
				u := u
				out = &u
				break
			}
		}
		return nil
	})
	return out, err
}

func (r accounts) CreateAdmin(_ context.Context, admin *db_models.Admin) error {
	return r.v.do("users.CreateAdmin", func(d *state) error {
		for _, a := range d.admins {
			if a.Username == admin.Username {
				return duplicate("admins.username")
			}
		}
		_ = admin.BeforeCreate(nil)
		if _, taken := d.admins[admin.ID]; taken {
			return duplicate("admins.id")
		}
		admin.ID = d.assignID(admin.ID)
		d.admins[admin.ID] = *admin
		return nil
	})
}

func (r accounts) FindAdminById(_ context.Context, id uint) (*db_models.Admin, error) {
	var out *db_models.Admin
	err := r.v.do("users.FindAdminById", func(d *state) error {
		if a, ok := d.admins[id]; ok {
			out = &a
		}
		return nil
	})
	return out, err
}

func (r accounts) FindAdminByUsername(_ context.Context, username string) (*db_models.Admin, error) {
	var out *db_models.Admin
	err := r.v.do("users.FindAdminByUsername", func(d *state) error {
		for _, a := range d.admins {
			if a.Username == username {
				a := a
				out = &a
				break
			}
		}
		return nil
	})
	return out, err
}

// posts -----------------------------------------------------------------------

type posts struct{ v view }

func (r posts) Create(_ context.Context, post *db_models.Post) error {
	return r.v.do("posts.Create", func(d *state) error {
		_ = post.BeforeCreate(nil)
		post.ID = d.newID()
		d.posts[post.ID] = *post
		return nil
	})
}

func (r posts) FindById(_ context.Context, id uint) (*db_models.Post, error) {
	var out *db_models.Post
	err := r.v.do("posts.FindById", func(d *state) error {
		if p, ok := d.posts[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r posts) FindByIdForUpdate(ctx context.Context, id uint) (*db_models.Post, error) {
	return r.FindById(ctx, id)
}

func (r posts) List(_ context.Context) ([]db_models.Post, error) {
	var out []db_models.Post
	err := r.v.do("posts.List", func(d *state) error {
		out = sortedValues(d.posts, nil, func(a, b db_models.Post) bool { return a.ID > b.ID })
		return nil
	})
	return out, err
}

func (r posts) ListByOwner(_ context.Context, ownerID uint) ([]db_models.Post, error) {
	var out []db_models.Post
	err := r.v.do("posts.ListByOwner", func(d *state) error {
		out = sortedValues(d.posts,
			func(p db_models.Post) bool { return p.OwnerID == ownerID },
			func(a, b db_models.Post) bool { return a.ID > b.ID })
		return nil
	})
	return out, err
}

func (r posts) Update(_ context.Context, post *db_models.Post) error {
	return r.v.do("posts.Update", func(d *state) error {
		if _, ok := d.posts[post.ID]; !ok {
			return nil
		}
		_ = post.BeforeUpdate(nil)
		d.posts[post.ID] = *post
		return nil
	})
}

func (r posts) Delete(_ context.Context, id uint) (int64, error) {
	var n int64
	err := r.v.do("posts.Delete", func(d *state) error {
		if _, ok := d.posts[id]; ok {
			delete(d.posts, id)
			n = 1
		}
		return nil
	})
	return n, err
}

// comments --------------------------------------------------------------------

type comments struct{ v view }

func (r comments) Create(_ context.Context, comment *db_models.Comment) error {
	return r.v.do("comments.Create", func(d *state) error {
		_ = comment.BeforeCreate(nil)
		comment.ID = d.newID()
		d.comments[comment.ID] = *comment
		return nil
	})
}

func (r comments) FindById(_ context.Context, id uint) (*db_models.Comment, error) {
	var out *db_models.Comment
	err := r.v.do("comments.FindById", func(d *state) error {
		if c, ok := d.comments[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r comments) ListByPost(_ context.Context, postID uint) ([]db_models.Comment, error) {
	var out []db_models.Comment
	err := r.v.do("comments.ListByPost", func(d *state) error {
		out = sortedValues(d.comments,
			func(c db_models.Comment) bool { return c.PostID == postID },
			func(a, b db_models.Comment) bool { return a.ID < b.ID })
		return nil
	})
	return out, err
}

func (r comments) UpdateText(_ context.Context, id uint, text string) error {
	return r.v.do("comments.UpdateText", func(d *state) error {
		c, ok := d.comments[id]
		if !ok {
			return nil
		}
		c.Text = text
		_ = c.BeforeUpdate(nil)
		d.comments[id] = c
		return nil
	})
}

func (r comments) Delete(_ context.Context, id uint) (int64, error) {
	var n int64
	err := r.v.do("comments.Delete", func(d *state) error {
		if _, ok := d.comments[id]; ok {
			delete(d.comments, id)
			n = 1
		}
		return nil
	})
	return n, err
}

func (r comments) DeleteByPost(_ context.Context, postID uint) (int64, error) {
	var n int64
	err := r.v.do("comments.DeleteByPost", func(d *state) error {
		for id, c := range d.comments {
			if c.PostID == postID {
				delete(d.comments, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

// reactions -------------------------------------------------------------------

type reactions struct{ v view }

func (r reactions) FindByPostAndUser(_ context.Context, postID, userID uint) (*db_models.Reaction, error) {
	var out *db_models.Reaction
	err := r.v.do("reactions.FindByPostAndUser", func(d *state) error {
		for _, re := range d.reactions {
			if re.PostID == postID && re.UserID == userID {
				re := re
				out = &re
				break
			}
		}
		return nil
	})
	return out, err
}

func (r reactions) ListByPost(_ context.Context, postID uint) ([]db_models.Reaction, error) {
	var out []db_models.Reaction
	err := r.v.do("reactions.ListByPost", func(d *state) error {
		out = sortedValues(d.reactions,
			func(re db_models.Reaction) bool { return re.PostID == postID },
			func(a, b db_models.Reaction) bool { return a.ID < b.ID })
		return nil
	})
	return out, err
}

func (r reactions) Create(_ context.Context, reaction *db_models.Reaction) error {
	return r.v.do("reactions.Create", func(d *state) error {
		for _, re := range d.reactions {
			if re.PostID == reaction.PostID && re.UserID == reaction.UserID {
				return duplicate("reactions.post_id_user_id")
			}
		}
		_ = reaction.BeforeCreate(nil)
		reaction.ID = d.newID()
		d.reactions[reaction.ID] = *reaction
		return nil
	})
}

func (r reactions) UpdateType(_ context.Context, id uint, reactionType db_models.ReactionType) error {
	return r.v.do("reactions.UpdateType", func(d *state) error {
		re, ok := d.reactions[id]
		if !ok {
			return nil
		}
		re.Type = reactionType
		_ = re.BeforeUpdate(nil)
		d.reactions[id] = re
		return nil
	})
}

func (r reactions) Delete(_ context.Context, id uint) (int64, error) {
	var n int64
	err := r.v.do("reactions.Delete", func(d *state) error {
		if _, ok := d.reactions[id]; ok {
			delete(d.reactions, id)
			n = 1
		}
		return nil
	})
	return n, err
}

func (r reactions) DeleteByPost(_ context.Context, postID uint) (int64, error) {
	var n int64
	err := r.v.do("reactions.DeleteByPost", func(d *state) error {
		for id, re := range d.reactions {
			if re.PostID == postID {
				delete(d.reactions, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

// notes -----------------------------------------------------------------------

type notes struct{ v view }

func (r notes) Create(_ context.Context, note *db_models.Note) error {
	return r.v.do("notes.Create", func(d *state) error {
		_ = note.BeforeCreate(nil)
		note.ID = d.newID()
		d.notes[note.ID] = *note
		return nil
	})
}

func (r notes) FindById(_ context.Context, id uint) (*db_models.Note, error) {
	var out *db_models.Note
	err := r.v.do("notes.FindById", func(d *state) error {
		if n, ok := d.notes[id]; ok {
			out = &n
		}
		return nil
	})
	return out, err
}

func (r notes) ListByOwner(_ context.Context, ownerID uint) ([]db_models.Note, error) {
	var out []db_models.Note
	err := r.v.do("notes.ListByOwner", func(d *state) error {
		out = sortedValues(d.notes,
			func(n db_models.Note) bool { return n.OwnerID == ownerID },
			func(a, b db_models.Note) bool { return a.ID > b.ID })
		return nil
	})
	return out, err
}

func (r notes) Update(_ context.Context, note *db_models.Note) error {
	return r.v.do("notes.Update", func(d *state) error {
		if _, ok := d.notes[note.ID]; !ok {
			return nil
		}
		_ = note.BeforeUpdate(nil)
		d.notes[note.ID] = *note
		return nil
	})
}

func (r notes) Delete(_ context.Context, id uint) (int64, error) {
	var n int64
	err := r.v.do("notes.Delete", func(d *state) error {
		if _, ok := d.notes[id]; ok {
			delete(d.notes, id)
			n = 1
		}
		return nil
	})
	return n, err
}

// learning plans --------------------------------------------------------------

type learningPlans struct{ v view }

func (r learningPlans) Create(_ context.Context, plan *db_models.LearningPlan) error {
	return r.v.do("learningPlans.Create", func(d *state) error {
		_ = plan.BeforeCreate(nil)
		plan.ID = d.newID()
		d.learningPlans[plan.ID] = *plan
		return nil
	})
}

func (r learningPlans) FindById(_ context.Context, id uint) (*db_models.LearningPlan, error) {
	var out *db_models.LearningPlan
	err := r.v.do("learningPlans.FindById", func(d *state) error {
		if p, ok := d.learningPlans[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r learningPlans) ListByOwner(_ context.Context, ownerID uint) ([]db_models.LearningPlan, error) {
	var out []db_models.LearningPlan
	err := r.v.do("learningPlans.ListByOwner", func(d *state) error {
		out = sortedValues(d.learningPlans,
			func(p db_models.LearningPlan) bool { return p.OwnerID == ownerID },
			func(a, b db_models.LearningPlan) bool { return a.ID > b.ID })
		return nil
	})
	return out, err
}

func (r learningPlans) ListAll(_ context.Context, status db_models.LearningPlanStatus) ([]db_models.LearningPlan, error) {
	var out []db_models.LearningPlan
	err := r.v.do("learningPlans.ListAll", func(d *state) error {
		out = sortedValues(d.learningPlans,
			func(p db_models.LearningPlan) bool { return status == "" || p.Status == status },
			func(a, b db_models.LearningPlan) bool { return a.ID > b.ID })
		return nil
	})
	return out, err
}

func (r learningPlans) Update(_ context.Context, plan *db_models.LearningPlan) error {
	return r.v.do("learningPlans.Update", func(d *state) error {
		if _, ok := d.learningPlans[plan.ID]; !ok {
			return nil
		}
		_ = plan.BeforeUpdate(nil)
		d.learningPlans[plan.ID] = *plan
		return nil
	})
}

func (r learningPlans) Delete(_ context.Context, id uint) (int64, error) {
	var n int64
	err := r.v.do("learningPlans.Delete", func(d *state) error {
		if _, ok := d.learningPlans[id]; ok {
			delete(d.learningPlans, id)
			n = 1
		}
		return nil
	})
	return n, err
}

// subscription plans ----------------------------------------------------------

type plans struct{ v view }

func findPlanByName(d *state, name string) *db_models.SubscriptionPlan {
	for _, p := range d.plans {
		if p.Name == name {
			p := p
			return &p
		}
	}
	return nil
}

func (r plans) Create(_ context.Context, plan *db_models.SubscriptionPlan) error {
	return r.v.do("plans.Create", func(d *state) error {
		if findPlanByName(d, plan.Name) != nil {
			return duplicate("subscription_plans.name")
		}
		_ = plan.BeforeCreate(nil)
		plan.ID = d.newID()
		d.plans[plan.ID] = *plan
		return nil
	})
}

func (r plans) FindById(_ context.Context, id uint) (*db_models.SubscriptionPlan, error) {
	var out *db_models.SubscriptionPlan
	err := r.v.do("plans.FindById", func(d *state) error {
		if p, ok := d.plans[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r plans) FindByIdForUpdate(ctx context.Context, id uint) (*db_models.SubscriptionPlan, error) {
	return r.FindById(ctx, id)
}

func (r plans) FindByNameForShare(_ context.Context, name string) (*db_models.SubscriptionPlan, error) {
	var out *db_models.SubscriptionPlan
	err := r.v.do("plans.FindByNameForShare", func(d *state) error {
		out = findPlanByName(d, name)
		return nil
	})
	return out, err
}

func (r plans) ExistsByName(_ context.Context, name string) (bool, error) {
	var exists bool
	err := r.v.do("plans.ExistsByName", func(d *state) error {
		exists = findPlanByName(d, name) != nil
		return nil
	})
	return exists, err
}

func (r plans) GetAllPlans(_ context.Context) ([]db_models.SubscriptionPlan, error) {
	var out []db_models.SubscriptionPlan
	err := r.v.do("plans.GetAllPlans", func(d *state) error {
		out = sortedValues(d.plans, nil, func(a, b db_models.SubscriptionPlan) bool {
			if a.Price != b.Price {
				return a.Price < b.Price
			}
			return a.ID < b.ID
		})
		return nil
	})
	return out, err
}

func (r plans) Update(_ context.Context, plan *db_models.SubscriptionPlan) error {
	return r.v.do("plans.Update", func(d *state) error {
		if _, ok := d.plans[plan.ID]; !ok {
			return nil
		}
		if other := findPlanByName(d, plan.Name); other != nil && other.ID != plan.ID {
			return duplicate("subscription_plans.name")
		}
		_ = plan.BeforeUpdate(nil)
		d.plans[plan.ID] = *plan
		return nil
	})
}

func (r plans) Delete(_ context.Context, id uint) (int64, error) {
	var n int64
	err := r.v.do("plans.Delete", func(d *state) error {
		if _, ok := d.plans[id]; ok {
			delete(d.plans, id)
			n = 1
		}
		return nil
	})
	return n, err
}

// subscriptions ---------------------------------------------------------------

type subscriptions struct{ v view }

// checkSingleActive mirrors the partial unique index on (user_id) WHERE active.
func checkSingleActive(d *state, sub *db_models.Subscription) error {
	if !sub.Active {
		return nil
	}
	for _, s := range d.subscriptions {
		if s.ID != sub.ID && s.UserID == sub.UserID && s.Active {
			return duplicate("subscriptions.user_id_active")
		}
	}
	return nil
}

func (r subscriptions) Create(_ context.Context, sub *db_models.Subscription) error {
	return r.v.do("subscriptions.Create", func(d *state) error {
		if err := checkSingleActive(d, sub); err != nil {
			return err
		}
		_ = sub.BeforeCreate(nil)
		sub.ID = d.newID()
		d.subscriptions[sub.ID] = *sub
		return nil
	})
}

func (r subscriptions) FindById(_ context.Context, id uint) (*db_models.Subscription, error) {
	var out *db_models.Subscription
	err := r.v.do("subscriptions.FindById", func(d *state) error {
		if s, ok := d.subscriptions[id]; ok {
			out = &s
		}
		return nil
	})
	return out, err
}

func (r subscriptions) ListByUser(_ context.Context, userID uint) ([]db_models.Subscription, error) {
	var out []db_models.Subscription
	err := r.v.do("subscriptions.ListByUser", func(d *state) error {
		out = sortedValues(d.subscriptions,
			func(s db_models.Subscription) bool { return s.UserID == userID },
			func(a, b db_models.Subscription) bool { return a.ID > b.ID })
		return nil
	})
	return out, err
}

func (r subscriptions) ListActiveByUser(_ context.Context, userID uint) ([]db_models.Subscription, error) {
	var out []db_models.Subscription
	err := r.v.do("subscriptions.ListActiveByUser", func(d *state) error {
		out = sortedValues(d.subscriptions,
			func(s db_models.Subscription) bool { return s.UserID == userID && s.Active },
			func(a, b db_models.Subscription) bool { return a.ID < b.ID })
		return nil
	})
	return out, err
}

func (r subscriptions) ListAll(_ context.Context) ([]db_models.Subscription, error) {
	var out []db_models.Subscription
	err := r.v.do("subscriptions.ListAll", func(d *state) error {
		out = sortedValues(d.subscriptions, nil,
			func(a, b db_models.Subscription) bool { return a.ID < b.ID })
		return nil
	})
	return out, err
}

func (r subscriptions) ListActiveEndedBefore(_ context.Context, ts int64) ([]db_models.Subscription, error) {
	var out []db_models.Subscription
	err := r.v.do("subscriptions.ListActiveEndedBefore", func(d *state) error {
		out = sortedValues(d.subscriptions,
			func(s db_models.Subscription) bool { return s.Active && s.EndDate != nil && *s.EndDate < ts },
			func(a, b db_models.Subscription) bool { return a.ID < b.ID })
		return nil
	})
	return out, err
}

func (r subscriptions) CountByPlanName(_ context.Context, planName string) (int64, error) {
	var n int64
	err := r.v.do("subscriptions.CountByPlanName", func(d *state) error {
		for _, s := range d.subscriptions {
			if s.PlanName == planName {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r subscriptions) Update(_ context.Context, sub *db_models.Subscription) error {
	return r.v.do("subscriptions.Update", func(d *state) error {
		if _, ok := d.subscriptions[sub.ID]; !ok {
			return nil
		}
		if err := checkSingleActive(d, sub); err != nil {
			return err
		}
		_ = sub.BeforeUpdate(nil)
		d.subscriptions[sub.ID] = *sub
		return nil
	})
}

func (r subscriptions) Delete(_ context.Context, id uint) (int64, error) {
	var n int64
	err := r.v.do("subscriptions.Delete", func(d *state) error {
		if _, ok := d.subscriptions[id]; ok {
			delete(d.subscriptions, id)
			n = 1
		}
		return nil
	})
	return n, err
}

// follows ---------------------------------------------------------------------

type follows struct{ v view }

func (r follows) Create(_ context.Context, edge *db_models.UserFollower) (bool, error) {
	var created bool
	err := r.v.do("follows.Create", func(d *state) error {
		key := followKey{user: edge.UserID, follower: edge.FollowerID}
		if _, ok := d.follows[key]; ok {
			return nil
		}
		if edge.CreatedAt == 0 {
			edge.CreatedAt = time.Now().Unix()
		}
		d.follows[key] = *edge
		created = true
		return nil
	})
	return created, err
}

func (r follows) Delete(_ context.Context, userID, followerID uint) (int64, error) {
	var n int64
	err := r.v.do("follows.Delete", func(d *state) error {
		key := followKey{user: userID, follower: followerID}
		if _, ok := d.follows[key]; ok {
			delete(d.follows, key)
			n = 1
		}
		return nil
	})
	return n, err
}

func (r follows) ListFollowers(_ context.Context, userID uint) ([]db_models.User, error) {
	var out []db_models.User
	err := r.v.do("follows.ListFollowers", func(d *state) error {
		out = sortedValues(d.users,
			func(u db_models.User) bool {
				_, ok := d.follows[followKey{user: userID, follower: u.ID}]
				return ok
			},
			func(a, b db_models.User) bool { return a.Username < b.Username })
		return nil
	})
	return out, err
}

func (r follows) ListFollowing(_ context.Context, followerID uint) ([]db_models.User, error) {
	var out []db_models.User
	err := r.v.do("follows.ListFollowing", func(d *state) error {
		out = sortedValues(d.users,
			func(u db_models.User) bool {
				_, ok := d.follows[followKey{user: u.ID, follower: followerID}]
				return ok
			},
			func(a, b db_models.User) bool { return a.Username < b.Username })
		return nil
	})
	return out, err
}

// quizzes ---------------------------------------------------------------------

type quizzes struct{ v view }

func (r quizzes) Create(_ context.Context, quiz *db_models.Quiz) error {
	return r.v.do("quizzes.Create", func(d *state) error {
		_ = quiz.BeforeCreate(nil)
		quiz.ID = d.newID()
		d.quizzes[quiz.ID] = *quiz
		return nil
	})
}

func (r quizzes) List(_ context.Context) ([]db_models.Quiz, error) {
	var out []db_models.Quiz
	err := r.v.do("quizzes.List", func(d *state) error {
		out = sortedValues(d.quizzes, nil,
			func(a, b db_models.Quiz) bool { return a.ID > b.ID })
		return nil
	})
	return out, err
}
