package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inkwell-backend/internal/domains/post"
)

type postgresPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postgresPostRepository{pool: pool}
}

const postColumns = `
	p.id, p.text, p.pub_date, p.image,
	u.id, u.username,
	g.id, g.title, g.slug
`

const postJoins = `
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN groups g ON g.id = p.group_id
`

func (r *postgresPostRepository) Create(ctx context.Context, p *post.Post) error {
	query := `
		INSERT INTO posts (text, author_id, group_id, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, pub_date
	`

	var groupID *int64
	if p.Group != nil {
		groupID = &p.Group.ID
	}

	err := r.pool.QueryRow(ctx, query, p.Text, p.Author.ID, groupID, p.Image).
		Scan(&p.ID, &p.PubDate)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *postgresPostRepository) GetByID(ctx context.Context, id int64) (*post.Post, error) {
	query := `SELECT ` + postColumns + postJoins + `WHERE p.id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return p, nil
}

func (r *postgresPostRepository) Update(ctx context.Context, p *post.Post) error {
	query := `
		UPDATE posts
		SET text = $2, group_id = $3, image = $4
		WHERE id = $1
	`

	var groupID *int64
	if p.Group != nil {
		groupID = &p.Group.ID
	}

	result, err := r.pool.Exec(ctx, query, p.ID, p.Text, groupID, p.Image)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	return nil
}

func (r *postgresPostRepository) List(ctx context.Context, f post.Filter, limit, offset int) ([]post.Post, int, error) {
	where := ""
	args := []interface{}{}

	switch {
	case f.GroupID != nil:
		where = "WHERE p.group_id = $1"
		args = append(args, *f.GroupID)
	case f.AuthorID != nil:
		where = "WHERE p.author_id = $1"
		args = append(args, *f.AuthorID)
	}

	countQuery := `SELECT COUNT(*) FROM posts p ` + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s %s %s ORDER BY p.pub_date DESC, p.id DESC LIMIT $%d OFFSET $%d`,
		postColumns, postJoins, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *postgresPostRepository) ListFollowed(ctx context.Context, userID uuid.UUID, limit, offset int) ([]post.Post, int, error) {
	followedWhere := `WHERE p.author_id IN (SELECT author_id FROM follows WHERE user_id = $1)`

	countQuery := `SELECT COUNT(*) FROM posts p ` + followedWhere
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count followed posts: %w", err)
	}

	query := `SELECT ` + postColumns + postJoins + followedWhere +
		` ORDER BY p.pub_date DESC, p.id DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list followed posts: %w", err)
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *postgresPostRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE author_id = $1`, authorID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

func scanPost(row pgx.Row) (*post.Post, error) {
	p := &post.Post{}
	var groupID *int64
	var groupTitle, groupSlug *string

	err := row.Scan(
		&p.ID,
		&p.Text,
		&p.PubDate,
		&p.Image,
		&p.Author.ID,
		&p.Author.Username,
		&groupID,
		&groupTitle,
		&groupSlug,
	)
	if err != nil {
		return nil, err
	}

	if groupID != nil {
		p.Group = &post.GroupRef{ID: *groupID, Title: *groupTitle, Slug: *groupSlug}
	}

	return p, nil
}

func scanPosts(rows pgx.Rows) ([]post.Post, error) {
	posts := []post.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	return posts, nil
}
