package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/linkup-app/backend/internal/models"
	"github.com/linkup-app/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes implementing the repository and cache interfaces.

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func newFakeProfileRepo(userIDs ...string) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
	for _, id := range userIDs {
		r.profiles[id] = &models.Profile{
			UserID:    id,
			Followers: []models.FollowEntry{},
			Following: []models.FollowEntry{},
		}
	}
	return r
}

func (r *fakeProfileRepo) CreateProfile(_ context.Context, profile *models.Profile) error {
	if profile.Followers == nil {
		profile.Followers = []models.FollowEntry{}
	}
	if profile.Following == nil {
		profile.Following = []models.FollowEntry{}
	}
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) GetProfileByUserID(_ context.Context, userID string) (*models.Profile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return profile, nil
}

func (r *fakeProfileRepo) GetProfiles(_ context.Context) ([]models.Profile, error) {
	out := make([]models.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProfileRepo) UpsertProfile(_ context.Context, userID string, fields models.UpsertProfileRequest) (*models.Profile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		profile = &models.Profile{
			UserID:    userID,
			Followers: []models.FollowEntry{},
			Following: []models.FollowEntry{},
		}
		r.profiles[userID] = profile
	}
	profile.Bio = fields.Bio
	profile.Location = fields.Location
	profile.Website = fields.Website
	return profile, nil
}

func (r *fakeProfileRepo) DeleteProfileByUserID(_ context.Context, userID string) error {
	if _, ok := r.profiles[userID]; !ok {
		return repositories.ErrProfileNotFound
	}
	delete(r.profiles, userID)
	return nil
}

func (r *fakeProfileRepo) IsFollowing(_ context.Context, viewerID, targetID string) (bool, error) {
	profile, ok := r.profiles[viewerID]
	if !ok {
		return false, nil
	}
	for _, entry := range profile.Following {
		if entry.UserID == targetID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProfileRepo) GetFollowingIDs(_ context.Context, userID string) ([]string, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	ids := make([]string, 0, len(profile.Following))
	for _, entry := range profile.Following {
		ids = append(ids, entry.UserID)
	}
	return ids, nil
}

func (r *fakeProfileRepo) AddFollowEdge(_ context.Context, viewerID, targetID string) (*models.Profile, error) {
	viewer, ok := r.profiles[viewerID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	target, ok := r.profiles[targetID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	now := time.Now()
	target.Followers = append([]models.FollowEntry{{UserID: viewerID, CreatedAt: now}}, target.Followers...)
	viewer.Following = append([]models.FollowEntry{{UserID: targetID, CreatedAt: now}}, viewer.Following...)
	return target, nil
}

func (r *fakeProfileRepo) RemoveFollowEdge(_ context.Context, viewerID, targetID string) (*models.Profile, error) {
	viewer, ok := r.profiles[viewerID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	target, ok := r.profiles[targetID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	target.Followers = removeEntry(target.Followers, viewerID)
	viewer.Following = removeEntry(viewer.Following, targetID)
	return target, nil
}

func removeEntry(entries []models.FollowEntry, userID string) []models.FollowEntry {
	out := entries[:0]
	for _, entry := range entries {
		if entry.UserID != userID {
			out = append(out, entry)
		}
	}
	return out
}

var _ repositories.ProfileRepository = (*fakeProfileRepo)(nil)

type fakePostRepo struct {
	posts       []*models.Post
	getAllCalls int
}

func (r *fakePostRepo) addPost(userID, content string, createdAt time.Time) *models.Post {
	post := &models.Post{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Content:   content,
		Likes:     []models.LikeEntry{},
		Comments:  []models.Comment{},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	r.posts = append(r.posts, post)
	return post
}

func (r *fakePostRepo) find(id string) *models.Post {
	for _, post := range r.posts {
		if post.ID.Hex() == id {
			return post
		}
	}
	return nil
}

func (r *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	if post.Likes == nil {
		post.Likes = []models.LikeEntry{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	r.posts = append(r.posts, post)
	return nil
}

func (r *fakePostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	if post := r.find(id); post != nil {
		return post, nil
	}
	return nil, repositories.ErrPostNotFound
}

func (r *fakePostRepo) GetPostsByUserID(_ context.Context, userID string) ([]models.Post, error) {
	var out []models.Post
	for _, post := range r.posts {
		if post.UserID == userID {
			out = append(out, *post)
		}
	}
	sortPostsDesc(out)
	return out, nil
}

func (r *fakePostRepo) GetAllPosts(_ context.Context) ([]models.Post, error) {
	r.getAllCalls++
	out := make([]models.Post, 0, len(r.posts))
	for _, post := range r.posts {
		out = append(out, *post)
	}
	sortPostsDesc(out)
	return out, nil
}

func sortPostsDesc(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

func (r *fakePostRepo) DeletePost(_ context.Context, id string) error {
	for i, post := range r.posts {
		if post.ID.Hex() == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return repositories.ErrPostNotFound
}

func (r *fakePostRepo) DeletePostsByUserID(_ context.Context, userID string) (int64, error) {
	var kept []*models.Post
	var deleted int64
	for _, post := range r.posts {
		if post.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, post)
	}
	r.posts = kept
	return deleted, nil
}

func (r *fakePostRepo) AddLike(_ context.Context, postID, userID string) (int, error) {
	post := r.find(postID)
	if post == nil {
		return 0, repositories.ErrPostNotFound
	}
	for _, like := range post.Likes {
		if like.UserID == userID {
			return 0, repositories.ErrAlreadyLiked
		}
	}
	post.Likes = append([]models.LikeEntry{{UserID: userID, CreatedAt: time.Now()}}, post.Likes...)
	post.LikesCount++
	return post.LikesCount, nil
}

func (r *fakePostRepo) RemoveLike(_ context.Context, postID, userID string) (int, error) {
	post := r.find(postID)
	if post == nil {
		return 0, repositories.ErrPostNotFound
	}
	for i, like := range post.Likes {
		if like.UserID == userID {
			post.Likes = append(post.Likes[:i], post.Likes[i+1:]...)
			post.LikesCount--
			return post.LikesCount, nil
		}
	}
	return 0, repositories.ErrNotLiked
}

func (r *fakePostRepo) AddComment(_ context.Context, postID string, comment models.Comment) ([]models.Comment, error) {
	post := r.find(postID)
	if post == nil {
		return nil, repositories.ErrPostNotFound
	}
	post.Comments = append([]models.Comment{comment}, post.Comments...)
	post.CommentsCount++
	return post.Comments, nil
}

func (r *fakePostRepo) RemoveComment(_ context.Context, postID, commentID string) ([]models.Comment, error) {
	post := r.find(postID)
	if post == nil {
		return nil, repositories.ErrPostNotFound
	}
	for i, comment := range post.Comments {
		if comment.ID == commentID {
			post.Comments = append(post.Comments[:i], post.Comments[i+1:]...)
			post.CommentsCount--
			return post.Comments, nil
		}
	}
	return nil, repositories.ErrCommentNotFound
}

var _ repositories.PostRepository = (*fakePostRepo)(nil)

type fakeFeedCache struct {
	entries       map[string][]models.Post
	setCalls      int
	invalidations []string
	getErr        error
	setErr        error
}

func newFakeFeedCache() *fakeFeedCache {
	return &fakeFeedCache{entries: make(map[string][]models.Post)}
}

func (c *fakeFeedCache) GetFeed(_ context.Context, viewerID string) ([]models.Post, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	posts, ok := c.entries[viewerID]
	return posts, ok, nil
}

func (c *fakeFeedCache) SetFeed(_ context.Context, viewerID string, posts []models.Post) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.setCalls++
	c.entries[viewerID] = posts
	return nil
}

func (c *fakeFeedCache) InvalidateFeed(_ context.Context, viewerID string) error {
	c.invalidations = append(c.invalidations, viewerID)
	delete(c.entries, viewerID)
	return nil
}

func (c *fakeFeedCache) Close() error { return nil }

type fakeNotificationRepo struct {
	notifications []*models.Notification
	createErr     error
}

func (r *fakeNotificationRepo) CreateNotification(notification *models.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) GetNotificationsByRecipient(recipientID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkNotificationRead(id uint, recipientID string) error {
	for _, n := range r.notifications {
		if n.ID == id && n.RecipientID == recipientID {
			n.Read = true
			return nil
		}
	}
	return errors.New("notification not found")
}

var _ repositories.NotificationRepository = (*fakeNotificationRepo)(nil)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) CreateUser(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return user, nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeUserRepo) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	for _, u := range r.users {
		if u.FirebaseUID == firebaseUID {
			return u, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeUserRepo) UpdateUser(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) DeleteUser(id string) error {
	delete(r.users, id)
	return nil
}

var _ repositories.UserRepository = (*fakeUserRepo)(nil)
