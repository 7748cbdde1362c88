package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/Seabass5831/CS-546-Project-Song-Review/models"
	"github.com/Seabass5831/CS-546-Project-Song-Review/validation"
)

const bcryptCost = 14

// Compared against when a credential check targets a user that does not
// exist, so both paths cost the same.
var dummyPasswordHash = []byte("$2a$14$uzGOEJgF2ZF6pdBZ0Zt0depzx7XO1PGBkV/1MiVQ0Y5aFM2wW9CG6")

// Users owns the users collection. Password plaintext never leaves the
// Create/Update/ValidateCredentials call frames.
type Users struct {
	coll Collection
}

func NewUsers(coll Collection) *Users {
	return &Users{coll: coll}
}

// Create registers a user. Email and username uniqueness is enforced by
// the collection's unique indexes.
func (u *Users) Create(ctx context.Context, username, firstName, lastName, email, password string, favoriteGenres []string) (*models.User, error) {
	if err := validation.RequireAll(username, firstName, lastName, email, password, favoriteGenres); err != nil {
		return nil, err
	}

	username, err := validation.CheckString(username, "username")
	if err != nil {
		return nil, err
	}
	firstName, err = validation.CheckString(firstName, "firstName")
	if err != nil {
		return nil, err
	}
	lastName, err = validation.CheckString(lastName, "lastName")
	if err != nil {
		return nil, err
	}
	email, err = validation.CheckString(email, "email")
	if err != nil {
		return nil, err
	}
	if !validation.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: email is not valid", models.ErrInvalidArgument)
	}
	password, err = validation.CheckString(password, "password")
	if err != nil {
		return nil, err
	}
	favoriteGenres, err = validation.CheckStringArray(favoriteGenres, "favoriteGenres")
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:       username,
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		HashedPassword: string(hash),
		FavoriteGenres: favoriteGenres,
		ListenedSongs:  []string{},
		ReviewsPosted:  []string{},
		Friends:        []string{},
	}

	id, err := u.coll.InsertOne(ctx, user)
	if err != nil {
		return nil, wrapWriteErr(err, fmt.Sprintf("user %q", username))
	}
	user.ID = id
	return &user, nil
}

// GetAll returns every user.
func (u *Users) GetAll(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := u.coll.Find(ctx, bson.M{}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID fetches one user by hex id.
func (u *Users) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if err := validation.RequireAll(userID); err != nil {
		return nil, err
	}
	userID, err := validation.CheckID(userID, "userId")
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := u.coll.FindOne(ctx, bson.M{"_id": oid(userID)}, &user); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("user %s", userID))
	}
	return &user, nil
}

// GetByEmail fetches one user by email.
func (u *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := validation.RequireAll(email); err != nil {
		return nil, err
	}
	email, err := validation.CheckString(email, "email")
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := u.coll.FindOne(ctx, bson.M{"email": email}, &user); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("user with email %s", email))
	}
	return &user, nil
}

// GetByUsername fetches one user by username.
func (u *Users) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if err := validation.RequireAll(username); err != nil {
		return nil, err
	}
	username, err := validation.CheckString(username, "username")
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := u.coll.FindOne(ctx, bson.M{"username": username}, &user); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("user %q", username))
	}
	return &user, nil
}

// ValidateCredentials reports whether password matches the stored hash.
// An unknown user id burns a comparison against a dummy hash so the
// caller cannot distinguish "no such user" from "wrong password" by
// timing.
func (u *Users) ValidateCredentials(ctx context.Context, userID, password string) (bool, error) {
	if err := validation.RequireAll(userID, password); err != nil {
		return false, err
	}
	userID, err := validation.CheckID(userID, "userId")
	if err != nil {
		return false, err
	}
	password, err = validation.CheckString(password, "password")
	if err != nil {
		return false, err
	}

	var user models.User
	if err := u.coll.FindOne(ctx, bson.M{"_id": oid(userID)}, &user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
			return false, nil
		}
		return false, err
	}

	return bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) == nil, nil
}

// Update replaces profile fields and re-hashes the password. Listened
// songs and posted reviews default to empty when not supplied.
func (u *Users) Update(ctx context.Context, userID, firstName, lastName, email, password string, listenedSongs, reviewsPosted []string) (*models.User, error) {
	if err := validation.RequireAll(userID, firstName, lastName, email, password); err != nil {
		return nil, err
	}

	userID, err := validation.CheckID(userID, "userId")
	if err != nil {
		return nil, err
	}
	firstName, err = validation.CheckString(firstName, "firstName")
	if err != nil {
		return nil, err
	}
	lastName, err = validation.CheckString(lastName, "lastName")
	if err != nil {
		return nil, err
	}
	email, err = validation.CheckString(email, "email")
	if err != nil {
		return nil, err
	}
	if !validation.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: email is not valid", models.ErrInvalidArgument)
	}
	password, err = validation.CheckString(password, "password")
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if listenedSongs == nil {
		listenedSongs = []string{}
	}
	if reviewsPosted == nil {
		reviewsPosted = []string{}
	}

	update := bson.M{"$set": bson.M{
		"firstName":      firstName,
		"lastName":       lastName,
		"email":          email,
		"hashedPassword": string(hash),
		"listenedSongs":  listenedSongs,
		"reviewsPosted":  reviewsPosted,
	}}

	var user models.User
	if err := u.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid(userID)}, update, &user); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("user %s", userID))
	}
	return &user, nil
}

// Remove deletes one user.
func (u *Users) Remove(ctx context.Context, userID string) error {
	if err := validation.RequireAll(userID); err != nil {
		return err
	}
	userID, err := validation.CheckID(userID, "userId")
	if err != nil {
		return err
	}

	deleted, err := u.coll.DeleteOne(ctx, bson.M{"_id": oid(userID)})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: user %s", models.ErrNotFound, userID)
	}
	return nil
}

// AddFriendByUsername appends the named user's id to the caller's friend
// list, then re-reads the document.
func (u *Users) AddFriendByUsername(ctx context.Context, userID, friendUsername string) (*models.User, error) {
	if err := validation.RequireAll(userID, friendUsername); err != nil {
		return nil, err
	}
	userID, err := validation.CheckID(userID, "userId")
	if err != nil {
		return nil, err
	}
	friendUsername, err = validation.CheckString(friendUsername, "friendUsername")
	if err != nil {
		return nil, err
	}

	friend, err := u.GetByUsername(ctx, friendUsername)
	if err != nil {
		return nil, err
	}

	current, err := u.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current.Username == friendUsername {
		return nil, fmt.Errorf("%w: cannot add yourself as a friend", models.ErrInvalidArgument)
	}
	for _, id := range current.Friends {
		if id == friend.ID.Hex() {
			return nil, fmt.Errorf("%w: %q is already a friend", models.ErrDuplicate, friendUsername)
		}
	}

	matched, _, err := u.coll.UpdateOne(ctx,
		bson.M{"_id": oid(userID)},
		bson.M{"$push": bson.M{"friends": friend.ID.Hex()}})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, fmt.Errorf("%w: user %s", models.ErrNotFound, userID)
	}

	return u.GetByID(ctx, userID)
}
