package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"forumflow/internal/database"
	"forumflow/internal/models"
)

// Vote counter fields on the post document.
const (
	UpVoteField   = "upVote"
	DownVoteField = "downVote"
)

type postRepository struct {
	posts *mongo.Collection
}

type UpdatePostRequest struct {
	PostTitle       string `json:"postTitle"`
	PostDescription string `json:"postDescription"`
	Tag             string `json:"tag"`
	AuthorImage     string `json:"authorImage"`
}

func NewPostRepository(db *database.DB) PostRepository {
	return &postRepository{posts: db.Collection(database.PostsCollection)}
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a document.
		return primitive.NilObjectID, ErrNotFound
	}
	return objectID, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (string, error) {
	post.ID = primitive.NewObjectID()
	post.UpVote = 0
	post.DownVote = 0
	post.Comments = []models.Comment{}
	post.CreatedAt = time.Now().UTC()

	result, err := r.posts.InsertOne(ctx, post)
	if err != nil {
		return "", fmt.Errorf("failed to create post: %w", err)
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	objectID, err := parseObjectID(postID)
	if err != nil {
		return nil, err
	}

	var post models.Post
	err = r.posts.FindOne(ctx, bson.M{"_id": objectID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func listFilter(query ListPostsQuery) bson.M {
	filter := bson.M{}
	if query.Email != "" {
		filter["authorEmail"] = query.Email
	}
	if query.Tag != "" {
		filter["tag"] = query.Tag
	}
	return filter
}

// listPipeline pages the filtered set. Sort mode "popularity" orders
// by net votes (upVote - downVote) descending with createdAt
// descending as the tie-break; every other value means newest first.
func listPipeline(query ListPostsQuery, filter bson.M) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
	}

	if query.Sort == "popularity" {
		pipeline = append(pipeline,
			bson.D{{Key: "$addFields", Value: bson.D{
				{Key: "netVotes", Value: bson.D{{Key: "$subtract", Value: bson.A{"$upVote", "$downVote"}}}},
			}}},
			bson.D{{Key: "$sort", Value: bson.D{
				{Key: "netVotes", Value: -1},
				{Key: "createdAt", Value: -1},
			}}},
		)
	} else {
		pipeline = append(pipeline,
			bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		)
	}

	return append(pipeline,
		bson.D{{Key: "$skip", Value: int64((query.Page - 1) * query.Limit)}},
		bson.D{{Key: "$limit", Value: int64(query.Limit)}},
	)
}

// List returns one page of posts plus the total count over the
// filtered set.
func (r *postRepository) List(ctx context.Context, query ListPostsQuery) ([]models.Post, int64, error) {
	filter := listFilter(query)

	total, err := r.posts.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	cursor, err := r.posts.Aggregate(ctx, listPipeline(query, filter))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, fmt.Errorf("failed to decode posts: %w", err)
	}

	return posts, total, nil
}

func (r *postRepository) IncrementVote(ctx context.Context, postID, field string) (*models.Post, error) {
	objectID, err := parseObjectID(postID)
	if err != nil {
		return nil, err
	}

	var post models.Post
	err = r.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID},
		bson.M{"$inc": bson.M{field: 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to apply vote: %w", err)
	}

	return &post, nil
}

func (r *postRepository) AddComment(ctx context.Context, postID string, comment models.Comment) (*models.Post, error) {
	objectID, err := parseObjectID(postID)
	if err != nil {
		return nil, err
	}

	var post models.Post
	err = r.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID},
		bson.M{"$push": bson.M{"comments": comment}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to append comment: %w", err)
	}

	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, postID string, req UpdatePostRequest) error {
	objectID, err := parseObjectID(postID)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"postTitle":       req.PostTitle,
		"postDescription": req.PostDescription,
		"tag":             req.Tag,
		"authorImage":     req.AuthorImage,
		"updatedAt":       time.Now().UTC(),
	}}

	result, err := r.posts.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *postRepository) Delete(ctx context.Context, postID string) error {
	objectID, err := parseObjectID(postID)
	if err != nil {
		return err
	}

	result, err := r.posts.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// CountByAuthor counts an author's posts. An empty status counts all
// of them.
func (r *postRepository) CountByAuthor(ctx context.Context, email, status string) (int64, error) {
	filter := bson.M{"authorEmail": email}
	if status != "" {
		filter["status"] = status
	}

	count, err := r.posts.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return count, nil
}

// distinctTagsFilter keeps empty and unset tags out of the directory.
func distinctTagsFilter() bson.M {
	return bson.M{"tag": bson.M{"$nin": bson.A{"", nil}}}
}

func (r *postRepository) DistinctTags(ctx context.Context) ([]string, error) {
	values, err := r.posts.Distinct(ctx, "tag", distinctTagsFilter())
	if err != nil {
		return nil, fmt.Errorf("failed to collect tags: %w", err)
	}

	tags := make([]string, 0, len(values))
	for _, value := range values {
		if tag, ok := value.(string); ok && tag != "" {
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)

	return tags, nil
}
