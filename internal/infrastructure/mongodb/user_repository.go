package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talentbase/crm-api/internal/domain"
	"github.com/talentbase/crm-api/internal/domain/entity"
	"github.com/talentbase/crm-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// userDoc documento BSON de la colección de usuarios. Las claves replican el
// esquema histórico (mayúscula inicial, createdAt en minúscula).
type userDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"Name"`
	Email     string    `bson:"Email"`
	Password  string    `bson:"Password"`
	Company   string    `bson:"Company"`
	Role      string    `bson:"Role"`
	DarkMode  bool      `bson:"DarkMode"`
	CreatedAt time.Time `bson:"createdAt"`
}

// UserRepo implementación Mongo de UserRepository.
type UserRepo struct {
	col *mongo.Collection
}

// NewUserRepository construye el adaptador sobre la base indicada.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection(usersCollection)}
}

// Create inserta un usuario nuevo. Un Email repetido (índice único) se
// traduce al error de dominio de duplicado.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	doc := userDoc{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.Password,
		Company:   user.Company,
		Role:      user.Role,
		DarkMode:  user.DarkMode,
		CreatedAt: user.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail busca por clave única. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDoc
	err := r.col.FindOne(ctx, bson.M{"Email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return docToUser(&doc), nil
}

// UpdateRole fija el rol del usuario.
func (r *UserRepo) UpdateRole(ctx context.Context, email, role string) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"Email": email}, bson.M{"$set": bson.M{"Role": role}})
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// SetDarkMode persiste la preferencia de tema.
func (r *UserRepo) SetDarkMode(ctx context.Context, email string, dark bool) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"Email": email}, bson.M{"$set": bson.M{"DarkMode": dark}})
	if err != nil {
		return fmt.Errorf("update dark mode: %w", err)
	}
	return nil
}

func docToUser(doc *userDoc) *entity.User {
	return &entity.User{
		ID:        doc.ID,
		Name:      doc.Name,
		Email:     doc.Email,
		Password:  doc.Password,
		Company:   doc.Company,
		Role:      doc.Role,
		DarkMode:  doc.DarkMode,
		CreatedAt: doc.CreatedAt,
	}
}
