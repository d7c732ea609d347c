package mock

import (
	"sync"

	"github.com/sulavmhrzn/BlogIt-API/app/models"
	"github.com/sulavmhrzn/BlogIt-API/app/repositories"
)

// PostRepository is an in-memory PostRepository for tests.
type PostRepository struct {
	posts map[string]*models.Post
	mutex sync.RWMutex
}

// CommentRepository is an in-memory CommentRepository for tests.
type CommentRepository struct {
	comments map[string]*models.Comment
	mutex    sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[string]*models.Post),
	}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[string]*models.Post)
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments: make(map[string]*models.Comment),
	}
}

func (m *CommentRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.comments = make(map[string]*models.Comment)
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.BeforeCreate()
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := []*models.Post{}
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	return posts, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	post.BeforeUpdate()
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

// CommentRepository implementation

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.BeforeCreate()
	m.comments[comment.PostID+":"+comment.ID] = comment
	return nil
}

func (m *CommentRepository) GetByID(postID, id string) (*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comment, exists := m.comments[postID+":"+id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

func (m *CommentRepository) ListByPost(postID string) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comments := []*models.Comment{}
	for _, comment := range m.comments {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (m *CommentRepository) CountByPost(postID string) (int, error) {
	comments, err := m.ListByPost(postID)
	if err != nil {
		return 0, err
	}
	return len(comments), nil
}

func (m *CommentRepository) Update(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	key := comment.PostID + ":" + comment.ID
	if _, exists := m.comments[key]; !exists {
		return repositories.ErrNotFound
	}
	m.comments[key] = comment
	return nil
}

func (m *CommentRepository) Delete(postID, id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	key := postID + ":" + id
	if _, exists := m.comments[key]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, key)
	return nil
}

func (m *CommentRepository) DeleteByPost(postID string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for key, comment := range m.comments {
		if comment.PostID == postID {
			delete(m.comments, key)
		}
	}
	return nil
}
