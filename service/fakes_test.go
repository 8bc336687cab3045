package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-recipe-service/entity"
)

// fakeStore is an in-memory RecipeStore. It mirrors the repository's
// contract: missing rows are gorm.ErrRecordNotFound, SetFields on a missing
// row is a no-op, FindMany applies RecipeFilter.Matches.
type fakeStore struct {
	recipes  map[uuid.UUID]*entity.Recipe
	chefs    map[uuid.UUID]*entity.Chef
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		recipes: map[uuid.UUID]*entity.Recipe{},
		chefs:   map[uuid.UUID]*entity.Chef{},
	}
}

func cloneRecipe(r *entity.Recipe) *entity.Recipe {
	clone := *r
	clone.Collaborators = append(datatypes.JSONSlice[entity.Collaborator]{}, r.Collaborators...)
	return &clone
}

func (s *fakeStore) FindByID(id uuid.UUID) (*entity.Recipe, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	recipe, ok := s.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cloneRecipe(recipe), nil
}

func (s *fakeStore) Insert(recipe *entity.Recipe) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.recipes[recipe.ID] = cloneRecipe(recipe)
	return nil
}

func (s *fakeStore) Replace(id uuid.UUID, recipe *entity.Recipe) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.recipes[id] = cloneRecipe(recipe)
	return nil
}

func (s *fakeStore) SetFields(id uuid.UUID, fields map[string]interface{}) error {
	if s.failWith != nil {
		return s.failWith
	}
	recipe, ok := s.recipes[id]
	if !ok {
		return nil
	}
	for key, value := range fields {
		switch key {
		case "name":
			recipe.Name = value.(string)
		case "description":
			recipe.Description = value.(string)
		case "section":
			recipe.Section = value.(string)
		case "link":
			recipe.Link = value.(string)
		case "img":
			recipe.Img = value.(string)
		case "chef_id":
			chefID := value.(uuid.UUID)
			recipe.ChefID = &chefID
		case "state":
			recipe.State = value.(string)
		case "deleted":
			recipe.Deleted = value.(bool)
		case "updated_at":
			recipe.UpdatedAt = value.(string)
		}
	}
	return nil
}

func (s *fakeStore) AppendCollaborator(id uuid.UUID, collaborator entity.Collaborator) error {
	if s.failWith != nil {
		return s.failWith
	}
	recipe, ok := s.recipes[id]
	if !ok {
		return nil
	}
	recipe.Collaborators = append(recipe.Collaborators, collaborator)
	return nil
}

func (s *fakeStore) RemoveCollaboratorByUsername(id uuid.UUID, username string) error {
	if s.failWith != nil {
		return s.failWith
	}
	recipe, ok := s.recipes[id]
	if !ok {
		return nil
	}
	kept := datatypes.JSONSlice[entity.Collaborator]{}
	for _, c := range recipe.Collaborators {
		if c.Username != username {
			kept = append(kept, c)
		}
	}
	recipe.Collaborators = kept
	return nil
}

func (s *fakeStore) FindMany(filter RecipeFilter) ([]entity.Recipe, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var matched []entity.Recipe
	for _, recipe := range s.recipes {
		if filter.Matches(recipe) {
			matched = append(matched, *cloneRecipe(recipe))
		}
	}
	return matched, nil
}

func (s *fakeStore) FindAllWithChef() ([]entity.Recipe, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var result []entity.Recipe
	for _, recipe := range s.recipes {
		if recipe.Deleted {
			continue
		}
		clone := cloneRecipe(recipe)
		if recipe.ChefID != nil {
			if chef, ok := s.chefs[*recipe.ChefID]; ok {
				chefCopy := *chef
				clone.Chef = &chefCopy
			}
		}
		result = append(result, *clone)
	}
	return result, nil
}

type fakeDirectory struct {
	users    map[string]entity.DirectoryUser
	failWith error
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{users: map[string]entity.DirectoryUser{}}
}

func (d *fakeDirectory) FindByUsername(ctx context.Context, username string) (*entity.DirectoryUser, error) {
	if d.failWith != nil {
		return nil, d.failWith
	}
	user, ok := d.users[username]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	return &user, nil
}
