package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-recipe-service/entity"
)

// RecipeStore is the narrow persistence surface the lifecycle manager and
// query service need. Implementations report missing records with
// gorm.ErrRecordNotFound. FindByID must return tombstoned records too: the
// lifecycle manager needs them for idempotent deletes.
type RecipeStore interface {
	FindByID(id uuid.UUID) (*entity.Recipe, error)
	Insert(recipe *entity.Recipe) error
	Replace(id uuid.UUID, recipe *entity.Recipe) error
	SetFields(id uuid.UUID, fields map[string]interface{}) error
	AppendCollaborator(id uuid.UUID, collaborator entity.Collaborator) error
	RemoveCollaboratorByUsername(id uuid.UUID, username string) error
	FindMany(filter RecipeFilter) ([]entity.Recipe, error)
	FindAllWithChef() ([]entity.Recipe, error)
}

// UserDirectory resolves usernames to stable identities. Lookups return
// entity.ErrUserNotFound when the username is unknown.
type UserDirectory interface {
	FindByUsername(ctx context.Context, username string) (*entity.DirectoryUser, error)
}

// RecipeLifecycle owns ownership checks, the publication state machine and
// collaborator roster mutation. It holds no in-process state: every call
// re-reads the persisted record, so concurrent calls race only through the
// store's own atomic operations.
type RecipeLifecycle struct {
	store     RecipeStore
	directory UserDirectory
}

func NewRecipeLifecycle(store RecipeStore, directory UserDirectory) *RecipeLifecycle {
	return &RecipeLifecycle{
		store:     store,
		directory: directory,
	}
}

// RecipeInput carries the caller-editable fields of a recipe. The owner
// reference is never part of it.
type RecipeInput struct {
	Name        string
	Description string
	Section     string
	Link        string
	Img         string
	ChefID      *uuid.UUID
	State       string
}

// RecipePatch is a partial update; nil fields are left untouched.
type RecipePatch struct {
	Name        *string
	Description *string
	Section     *string
	Link        *string
	Img         *string
	ChefID      *uuid.UUID
	State       *string
}

func (s *RecipeLifecycle) Create(ctx context.Context, ownerID uuid.UUID, input RecipeInput) (*entity.Recipe, error) {
	if err := validateRequiredFields(input); err != nil {
		return nil, err
	}
	state := input.State
	if state == "" {
		state = StatePublished
	}
	if !ValidState(state) {
		return nil, validationError("invalid state '" + state + "': must be draft, published or archived")
	}

	now := time.Now().Format(time.RFC3339)
	recipe := &entity.Recipe{
		ID:            uuid.New(),
		Name:          input.Name,
		Description:   input.Description,
		Section:       input.Section,
		Link:          input.Link,
		Img:           input.Img,
		ChefID:        input.ChefID,
		OwnerID:       ownerID,
		State:         state,
		Collaborators: datatypes.NewJSONSlice([]entity.Collaborator{}),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Insert(recipe); err != nil {
		return nil, dependencyError("inserting recipe", err)
	}
	return s.reload(recipe.ID)
}

// AuthorizeOwner reports whether the recipe exists and is owned by userID.
// Mutations do not reuse a previous result of this check; each one re-runs
// it against the current persisted record.
func (s *RecipeLifecycle) AuthorizeOwner(ctx context.Context, recipeID, userID uuid.UUID) (bool, error) {
	recipe, err := s.store.FindByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, dependencyError("loading recipe", err)
	}
	return recipe.OwnerID == userID, nil
}

func (s *RecipeLifecycle) Replace(ctx context.Context, recipeID, actingUserID uuid.UUID, input RecipeInput) (*entity.Recipe, error) {
	current, err := s.ownedRecipe(recipeID, actingUserID)
	if err != nil {
		return nil, err
	}
	if !operationAllowed(opContentEdit, current.State) {
		return nil, invalidStateError("archived recipes are immutable for content edits; transition their state first")
	}
	if err := validateRequiredFields(input); err != nil {
		return nil, err
	}
	state := input.State
	if state == "" {
		state = StatePublished
	}
	if !ValidState(state) {
		return nil, validationError("invalid state '" + state + "': must be draft, published or archived")
	}

	updated := &entity.Recipe{
		ID:          current.ID,
		Name:        input.Name,
		Description: input.Description,
		Section:     input.Section,
		Link:        input.Link,
		Img:         input.Img,
		ChefID:      input.ChefID,
		// Owner, roster, tombstone and creation time always come from the
		// persisted record, never from caller input.
		OwnerID:       current.OwnerID,
		State:         state,
		Collaborators: current.Collaborators,
		Deleted:       current.Deleted,
		CreatedAt:     current.CreatedAt,
		UpdatedAt:     time.Now().Format(time.RFC3339),
	}

	if err := s.store.Replace(recipeID, updated); err != nil {
		return nil, dependencyError("replacing recipe", err)
	}
	return s.reload(recipeID)
}

func (s *RecipeLifecycle) PatchFields(ctx context.Context, recipeID, actingUserID uuid.UUID, patch RecipePatch) (*entity.Recipe, error) {
	current, err := s.ownedRecipe(recipeID, actingUserID)
	if err != nil {
		return nil, err
	}
	if !operationAllowed(opContentEdit, current.State) {
		return nil, invalidStateError("archived recipes are immutable for content edits; transition their state first")
	}

	fields := map[string]interface{}{}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, validationError("name cannot be empty")
		}
		fields["name"] = *patch.Name
	}
	if patch.Description != nil {
		if strings.TrimSpace(*patch.Description) == "" {
			return nil, validationError("description cannot be empty")
		}
		fields["description"] = *patch.Description
	}
	if patch.Section != nil {
		if strings.TrimSpace(*patch.Section) == "" {
			return nil, validationError("section cannot be empty")
		}
		fields["section"] = *patch.Section
	}
	if patch.Link != nil {
		fields["link"] = *patch.Link
	}
	if patch.Img != nil {
		if strings.TrimSpace(*patch.Img) == "" {
			return nil, validationError("img cannot be empty")
		}
		fields["img"] = *patch.Img
	}
	if patch.ChefID != nil {
		fields["chef_id"] = *patch.ChefID
	}
	if patch.State != nil {
		if !ValidState(*patch.State) {
			return nil, validationError("invalid state '" + *patch.State + "': must be draft, published or archived")
		}
		fields["state"] = *patch.State
	}

	if len(fields) > 0 {
		fields["updated_at"] = time.Now().Format(time.RFC3339)
		if err := s.store.SetFields(recipeID, fields); err != nil {
			return nil, dependencyError("updating recipe", err)
		}
	}
	return s.reload(recipeID)
}

// Delete sets the tombstone flag. Deleting an already tombstoned recipe
// succeeds again; setting the flag twice is harmless.
func (s *RecipeLifecycle) Delete(ctx context.Context, recipeID, actingUserID uuid.UUID) (uuid.UUID, error) {
	current, err := s.ownedRecipe(recipeID, actingUserID)
	if err != nil {
		return uuid.Nil, err
	}
	if !operationAllowed(opDelete, current.State) {
		return uuid.Nil, invalidStateError("archived recipes cannot be deleted; transition their state first")
	}

	fields := map[string]interface{}{
		"deleted":    true,
		"updated_at": time.Now().Format(time.RFC3339),
	}
	if err := s.store.SetFields(recipeID, fields); err != nil {
		return uuid.Nil, dependencyError("deleting recipe", err)
	}
	return recipeID, nil
}

// ChangeState is the only operation permitted on archived recipes; it is how
// they leave that state. Any state is reachable from any other.
func (s *RecipeLifecycle) ChangeState(ctx context.Context, recipeID, actingUserID uuid.UUID, newState string) (*entity.Recipe, error) {
	current, err := s.ownedRecipe(recipeID, actingUserID)
	if err != nil {
		return nil, err
	}
	if !ValidState(newState) {
		return nil, validationError("invalid state '" + newState + "': must be draft, published or archived")
	}
	if !operationAllowed(opChangeState, current.State) {
		return nil, invalidStateError("state changes are not permitted from state '" + current.State + "'")
	}

	fields := map[string]interface{}{
		"state":      newState,
		"updated_at": time.Now().Format(time.RFC3339),
	}
	if err := s.store.SetFields(recipeID, fields); err != nil {
		return nil, dependencyError("changing recipe state", err)
	}
	return s.reload(recipeID)
}

func (s *RecipeLifecycle) AddCollaborator(ctx context.Context, recipeID, actingUserID uuid.UUID, username string) (*entity.Recipe, error) {
	current, err := s.ownedRecipe(recipeID, actingUserID)
	if err != nil {
		return nil, err
	}
	if !operationAllowed(opRosterChange, current.State) {
		return nil, invalidStateError("roster changes are not permitted from state '" + current.State + "'")
	}

	user, err := s.directory.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, notFoundError("user '" + username + "' not found")
		}
		return nil, dependencyError("resolving username", err)
	}

	if current.HasCollaborator(user.ID) {
		return nil, duplicateCollaboratorError(username)
	}

	collaborator := entity.Collaborator{UserID: user.ID, Username: user.Username}
	if err := s.store.AppendCollaborator(recipeID, collaborator); err != nil {
		return nil, dependencyError("adding collaborator", err)
	}
	return s.reload(recipeID)
}

// RemoveCollaborator removes every roster entry with the given username.
// Removal matches by username while uniqueness is keyed by user id; that
// asymmetry is the published interface contract. Removing an absent
// username is a no-op, not an error.
func (s *RecipeLifecycle) RemoveCollaborator(ctx context.Context, recipeID, actingUserID uuid.UUID, username string) (*entity.Recipe, error) {
	current, err := s.ownedRecipe(recipeID, actingUserID)
	if err != nil {
		return nil, err
	}
	if !operationAllowed(opRosterChange, current.State) {
		return nil, invalidStateError("roster changes are not permitted from state '" + current.State + "'")
	}

	if err := s.store.RemoveCollaboratorByUsername(recipeID, username); err != nil {
		return nil, dependencyError("removing collaborator", err)
	}
	return s.reload(recipeID)
}

// ownedRecipe is the ownership guard every mutation starts with. It always
// re-reads the current persisted record so the check cannot act on a stale
// snapshot. A nonexistent recipe is not authorized, same as a foreign one.
// Granting collaborators write access later would be a change here only.
func (s *RecipeLifecycle) ownedRecipe(recipeID, userID uuid.UUID) (*entity.Recipe, error) {
	recipe, err := s.store.FindByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notAuthorizedError("only the owner can modify this recipe")
		}
		return nil, dependencyError("loading recipe", err)
	}
	if recipe.OwnerID != userID {
		return nil, notAuthorizedError("only the owner can modify this recipe")
	}
	return recipe, nil
}

func (s *RecipeLifecycle) reload(recipeID uuid.UUID) (*entity.Recipe, error) {
	recipe, err := s.store.FindByID(recipeID)
	if err != nil {
		return nil, dependencyError("reloading recipe", err)
	}
	return recipe, nil
}

func validateRequiredFields(input RecipeInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return validationError("name is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return validationError("description is required")
	}
	if strings.TrimSpace(input.Section) == "" {
		return validationError("section is required")
	}
	if strings.TrimSpace(input.Img) == "" {
		return validationError("img is required")
	}
	return nil
}
