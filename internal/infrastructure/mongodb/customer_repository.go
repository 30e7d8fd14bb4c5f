package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talentbase/crm-api/internal/domain/access"
	"github.com/talentbase/crm-api/internal/domain/entity"
	"github.com/talentbase/crm-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// customerDoc documento BSON de la colección de clientes. La clave
// "Applied Position" (con espacio) viene del esquema histórico y es contrato
// con los consumidores existentes. Salary se guarda como double.
type customerDoc struct {
	ID              string    `bson:"_id"`
	UserEmail       string    `bson:"userEmail"`
	Company         string    `bson:"Company,omitempty"`
	Name            string    `bson:"Name"`
	Email           string    `bson:"Email"`
	AppliedPosition string    `bson:"Applied Position"`
	Salary          float64   `bson:"Salary"`
	CreatedAt       time.Time `bson:"createdAt"`
}

// CustomerRepo implementación Mongo de CustomerRepository.
type CustomerRepo struct {
	col *mongo.Collection
}

// NewCustomerRepository construye el adaptador sobre la base indicada.
func NewCustomerRepository(db *mongo.Database) *CustomerRepo {
	return &CustomerRepo{col: db.Collection(customersCollection)}
}

// scopeFilter traduce el alcance del llamador al filtro de la consulta.
// base puede traer condiciones adicionales (ej. el Email del cliente).
func scopeFilter(scope access.Scope, base bson.M) bson.M {
	if base == nil {
		base = bson.M{}
	}
	if !scope.All {
		base["Company"] = scope.Company
	}
	return base
}

// Create persiste un cliente nuevo.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if _, err := r.col.InsertOne(ctx, customerToDoc(customer)); err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// List devuelve los clientes dentro del alcance, en orden de inserción.
func (r *CustomerRepo) List(ctx context.Context, scope access.Scope) ([]*entity.Customer, error) {
	cursor, err := r.col.Find(ctx, scopeFilter(scope, nil))
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.Customer
	for cursor.Next(ctx) {
		var doc customerDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode customer: %w", err)
		}
		list = append(list, docToCustomer(&doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor customers: %w", err)
	}
	return list, nil
}

// UpdateByEmail aplica los campos mutables al cliente con ese Email dentro
// del alcance. Para no-SuperAdmin el filtro exige (Email, Company) a la vez:
// un Email coincidente de otra empresa no casa y se informa matched=false.
func (r *CustomerRepo) UpdateByEmail(ctx context.Context, email string, scope access.Scope, upd *entity.Customer) (bool, error) {
	filter := scopeFilter(scope, bson.M{"Email": email})
	update := bson.M{"$set": bson.M{
		"Name":             upd.Name,
		"Applied Position": upd.AppliedPosition,
		"Salary":           upd.Salary.InexactFloat64(),
	}}
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("update customer: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// DeleteByEmail elimina el cliente con ese Email dentro del alcance.
func (r *CustomerRepo) DeleteByEmail(ctx context.Context, email string, scope access.Scope) (bool, error) {
	res, err := r.col.DeleteOne(ctx, scopeFilter(scope, bson.M{"Email": email}))
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// ListMissingCompany devuelve los clientes sin Company asignada (documentos
// antiguos, anteriores a la denormalización).
func (r *CustomerRepo) ListMissingCompany(ctx context.Context) ([]*entity.Customer, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"Company": bson.M{"$exists": false}},
		bson.M{"Company": ""},
	}}
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list customers sin company: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.Customer
	for cursor.Next(ctx) {
		var doc customerDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode customer: %w", err)
		}
		list = append(list, docToCustomer(&doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor customers: %w", err)
	}
	return list, nil
}

// SetCompany asigna la empresa a un cliente concreto (backfill).
func (r *CustomerRepo) SetCompany(ctx context.Context, id, company string) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"Company": company}})
	if err != nil {
		return fmt.Errorf("set company: %w", err)
	}
	return nil
}

func customerToDoc(c *entity.Customer) customerDoc {
	return customerDoc{
		ID:              c.ID,
		UserEmail:       c.UserEmail,
		Company:         c.Company,
		Name:            c.Name,
		Email:           c.Email,
		AppliedPosition: c.AppliedPosition,
		Salary:          c.Salary.InexactFloat64(),
		CreatedAt:       c.CreatedAt,
	}
}

func docToCustomer(doc *customerDoc) *entity.Customer {
	return &entity.Customer{
		ID:              doc.ID,
		UserEmail:       doc.UserEmail,
		Company:         doc.Company,
		Name:            doc.Name,
		Email:           doc.Email,
		AppliedPosition: doc.AppliedPosition,
		Salary:          decimal.NewFromFloat(doc.Salary),
		CreatedAt:       doc.CreatedAt,
	}
}
