package produce

import amqp "github.com/rabbitmq/amqp091-go"

type Produce struct {
	RecipeService *RecipeService
}

var produceInstance *Produce

func InitProduce(channel *amqp.Channel) *Produce {
	if produceInstance != nil {
		return produceInstance
	}

	recipeService := InitRecipeService(channel)
	if recipeService == nil {
		panic("Failed to initialize Recipe produce service")
	}

	produceInstance = &Produce{
		RecipeService: recipeService,
	}

	return produceInstance
}

func GetProduce() *Produce {
	if produceInstance == nil {
		panic("Produce not initialized. Call InitProduce() first.")
	}
	return produceInstance
}
