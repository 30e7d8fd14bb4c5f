package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes crea los índices de los que depende la lógica de negocio:
// Email único en usuarios (unicidad de cuenta), Company y Email+Company en
// clientes (consultas particionadas por tenant). Idempotente.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	users := db.Collection(usersCollection)
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "Email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("índice único de Email en usuarios: %w", err)
	}

	customers := db.Collection(customersCollection)
	_, err = customers.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "Company", Value: 1}}},
		{Keys: bson.D{{Key: "Email", Value: 1}, {Key: "Company", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("índices de clientes: %w", err)
	}
	return nil
}
