package main

import (
	"fmt"
	"os"

	"github.com/vibecoders/backend/internal/domain/catalog"
	"github.com/vibecoders/backend/internal/infrastructure/config"
	"github.com/vibecoders/backend/internal/infrastructure/logger"
	"github.com/vibecoders/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type seedIngredient struct {
	Name   string
	Amount string
	Unit   string
}

type seedStep struct {
	Instruction string
	Image       string
}

type seedReview struct {
	Author  string
	Rating  int
	Comment string
	Date    string
}

type seedRecipe struct {
	Title         string
	Category      string
	CookTime      int
	Servings      int
	Calories      int
	Proteins      float64
	Fats          float64
	Carbohydrates float64
	Image         string
	Ingredients   []seedIngredient
	Steps         []seedStep
	Reviews       []seedReview
}

func main() {
	log, err := logger.New(&logger.Config{
		Level:      "info",
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	var existing int64
	if err := db.DB.Model(&catalog.Recipe{}).Count(&existing).Error; err != nil {
		log.Fatal("Failed to count existing recipes", zap.Error(err))
	}
	if existing > 0 {
		log.Info("Database already contains recipes, skipping seed",
			zap.Int64("count", existing),
		)
		return
	}

	recipes, err := buildRecipes()
	if err != nil {
		log.Fatal("Failed to build seed recipes", zap.Error(err))
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, r := range recipes {
			if err := tx.Create(r).Error; err != nil {
				return fmt.Errorf("failed to insert recipe %q: %w", r.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}

	log.Info("Database seeded successfully", zap.Int("recipes", len(recipes)))
}

func buildRecipes() ([]*catalog.Recipe, error) {
	recipes := make([]*catalog.Recipe, 0, len(seedRecipes))
	for _, sr := range seedRecipes {
		r, err := catalog.NewRecipe(sr.Title, sr.Category, sr.CookTime, sr.Servings)
		if err != nil {
			return nil, err
		}
		if sr.Image != "" {
			image := sr.Image
			r.Image = &image
		}
		calories := sr.Calories
		proteins := sr.Proteins
		fats := sr.Fats
		carbohydrates := sr.Carbohydrates
		if err := r.SetNutrition(&calories, &proteins, &fats, &carbohydrates); err != nil {
			return nil, err
		}
		for _, ing := range sr.Ingredients {
			if err := r.AddIngredient(ing.Name, ing.Amount, ing.Unit); err != nil {
				return nil, err
			}
		}
		for _, st := range sr.Steps {
			var image *string
			if st.Image != "" {
				v := st.Image
				image = &v
			}
			if err := r.AddStep(st.Instruction, image); err != nil {
				return nil, err
			}
		}
		for _, rv := range sr.Reviews {
			review, err := catalog.NewReview(r.ID, rv.Author, rv.Rating, rv.Comment, rv.Date, nil)
			if err != nil {
				return nil, err
			}
			r.Reviews = append(r.Reviews, *review)
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

var seedRecipes = []seedRecipe{
	{
		Title:         "Американские панкейки",
		Category:      "Завтрак",
		CookTime:      20,
		Servings:      4,
		Calories:      220,
		Proteins:      7.5,
		Fats:          8.0,
		Carbohydrates: 30.0,
		Image:         "https://images.unsplash.com/photo-1637533114107-1dc725c6e576?fm=jpg&q=80&w=1080",
		Ingredients: []seedIngredient{
			{"Мука", "200", "г"},
			{"Молоко", "250", "мл"},
			{"Яйца", "2", "шт"},
			{"Сахар", "2", "ст.л."},
			{"Разрыхлитель", "1", "ч.л."},
			{"Соль", "0.5", "ч.л."},
			{"Сливочное масло", "30", "г"},
		},
		Steps: []seedStep{
			{"В большой миске смешайте муку, сахар, разрыхлитель и соль.", "https://images.unsplash.com/photo-1551185618-07fd482ff86e?fm=jpg&q=80&w=1080"},
			{"В отдельной миске взбейте яйца с молоком.", "https://images.unsplash.com/photo-1609501676725-7186f70a7d28?fm=jpg&q=80&w=1080"},
			{"Растопите сливочное масло и дайте ему немного остыть.", "https://images.unsplash.com/photo-1609501676725-7186f70a7d28?fm=jpg&q=80&w=1080"},
			{"Смешайте жидкие ингредиенты с сухими, добавьте растопленное масло. Не перемешивайте слишком долго - небольшие комочки допустимы.", "https://images.unsplash.com/photo-1551185618-07fd482ff86e?fm=jpg&q=80&w=1080"},
			{"Разогрейте сковороду на среднем огне, слегка смажьте маслом.", "https://images.unsplash.com/photo-1556910103-1c02745aae4d?fm=jpg&q=80&w=1080"},
			{"Выливайте тесто порциями и жарьте до появления пузырьков на поверхности, затем переверните и жарьте еще 1-2 минуты.", "https://images.unsplash.com/photo-1740836257337-0d4fd26db36b?fm=jpg&q=80&w=1080"},
		},
		Reviews: []seedReview{
			{"Анна", 5, "Отличный рецепт! Панкейки получились очень пышными и вкусными. Вся семья в восторге!", "15 ноя 2024"},
			{"Михаил", 4, "Хороший рецепт, но я добавил немного ванили для аромата. Рекомендую!", "10 ноя 2024"},
		},
	},
	{
		Title:         "Паста Болоньезе",
		Category:      "Обед",
		CookTime:      45,
		Servings:      4,
		Calories:      520,
		Proteins:      28.0,
		Fats:          18.0,
		Carbohydrates: 55.0,
		Image:         "https://images.unsplash.com/photo-1622973536968-3ead9e780960?fm=jpg&q=80&w=1080",
		Ingredients: []seedIngredient{
			{"Спагетти", "400", "г"},
			{"Говяжий фарш", "500", "г"},
			{"Лук репчатый", "1", "шт"},
			{"Морковь", "1", "шт"},
			{"Томаты в собственном соку", "400", "г"},
			{"Томатная паста", "2", "ст.л."},
			{"Чеснок", "3", "зубчика"},
			{"Оливковое масло", "3", "ст.л."},
			{"Базилик сушеный", "1", "ч.л."},
			{"Соль и перец", "по", "вкусу"},
		},
		Steps: []seedStep{
			{"Мелко нарежьте лук, морковь и чеснок.", "https://images.unsplash.com/photo-1518977822534-7049a61ee0c2?fm=jpg&q=80&w=1080"},
			{"Разогрейте оливковое масло в большой сковороде, обжарьте лук до прозрачности.", "https://images.unsplash.com/photo-1556910103-1c02745aae4d?fm=jpg&q=80&w=1080"},
			{"Добавьте морковь и чеснок, жарьте еще 3 минуты.", "https://images.unsplash.com/photo-1556910103-1c02745aae4d?fm=jpg&q=80&w=1080"},
			{"Добавьте фарш, разбивая комочки. Жарьте до румяности около 10 минут.", "https://images.unsplash.com/photo-1556910103-1c02745aae4d?fm=jpg&q=80&w=1080"},
			{"Добавьте томаты, томатную пасту, базилик, соль и перец. Тушите на медленном огне 20-25 минут.", "https://images.unsplash.com/photo-1612078960243-177e68303e7e?fm=jpg&q=80&w=1080"},
			{"Отварите спагетти согласно инструкции на упаковке. Смешайте с соусом и подавайте.", "https://images.unsplash.com/photo-1622973536968-3ead9e780960?fm=jpg&q=80&w=1080"},
		},
	},
	{
		Title:         "Омлет с овощами",
		Category:      "Завтрак",
		CookTime:      15,
		Servings:      2,
		Calories:      180,
		Proteins:      12.0,
		Fats:          12.0,
		Carbohydrates: 6.0,
		Image:         "https://images.unsplash.com/photo-1668283653825-37b80f055b05?fm=jpg&q=80&w=1080",
		Ingredients: []seedIngredient{
			{"Яйца", "4", "шт"},
			{"Молоко", "50", "мл"},
			{"Болгарский перец", "1", "шт"},
			{"Помидор", "1", "шт"},
			{"Зеленый лук", "2", "стебля"},
			{"Сливочное масло", "20", "г"},
			{"Соль и перец", "по", "вкусу"},
		},
		Steps: []seedStep{
			{"Взбейте яйца с молоком, солью и перцем.", "https://images.unsplash.com/photo-1609501676725-7186f70a7d28?fm=jpg&q=80&w=1080"},
			{"Нарежьте перец и помидор небольшими кубиками.", "https://images.unsplash.com/photo-1518977822534-7049a61ee0c2?fm=jpg&q=80&w=1080"},
			{"Разогрейте масло на сковороде, обжарьте перец 2-3 минуты.", "https://images.unsplash.com/photo-1556910103-1c02745aae4d?fm=jpg&q=80&w=1080"},
			{"Добавьте помидор, жарьте еще 1 минуту.", "https://images.unsplash.com/photo-1556910103-1c02745aae4d?fm=jpg&q=80&w=1080"},
			{"Залейте овощи яичной смесью, посыпьте зеленым луком.", "https://images.unsplash.com/photo-1668283653825-37b80f055b05?fm=jpg&q=80&w=1080"},
			{"Готовьте на среднем огне под крышкой 5-7 минут до готовности.", "https://images.unsplash.com/photo-1668283653825-37b80f055b05?fm=jpg&q=80&w=1080"},
		},
	},
	{
		Title:         "Лосось на гриле",
		Category:      "Ужин",
		CookTime:      25,
		Servings:      2,
		Calories:      350,
		Proteins:      35.0,
		Fats:          18.0,
		Carbohydrates: 2.0,
		Image:         "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?fm=jpg&q=80&w=1080",
		Ingredients: []seedIngredient{
			{"Филе лосося", "400", "г"},
			{"Лимон", "1", "шт"},
			{"Оливковое масло", "2", "ст.л."},
			{"Чеснок", "2", "зубчика"},
			{"Свежий укроп", "3", "веточки"},
			{"Соль и перец", "по", "вкусу"},
		},
		Steps: []seedStep{
			{"Смешайте оливковое масло, сок половины лимона, измельченный чеснок, соль и перец.", "https://images.unsplash.com/photo-1551185618-07fd482ff86e?fm=jpg&q=80&w=1080"},
			{"Замаринуйте филе лосося в этой смеси на 15 минут.", "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?fm=jpg&q=80&w=1080"},
			{"Разогрейте гриль или сковороду-гриль на среднем огне.", "https://images.unsplash.com/photo-1556910103-1c02745aae4d?fm=jpg&q=80&w=1080"},
			{"Выложите лосось кожей вниз и жарьте 4-5 минут.", "https://images.unsplash.com/photo-1589236103748-2077d3435dbe?fm=jpg&q=80&w=1080"},
			{"Переверните и жарьте еще 3-4 минуты до готовности.", "https://images.unsplash.com/photo-1589236103748-2077d3435dbe?fm=jpg&q=80&w=1080"},
			{"Подавайте с дольками лимона и свежим укропом.", "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?fm=jpg&q=80&w=1080"},
		},
	},
	{
		Title:         "Салат Цезарь",
		Category:      "Обед",
		CookTime:      20,
		Servings:      2,
		Calories:      380,
		Proteins:      25.0,
		Fats:          22.0,
		Carbohydrates: 15.0,
		Image:         "https://images.unsplash.com/photo-1550304943-4f24f54ddde9?fm=jpg&q=80&w=1080",
		Ingredients: []seedIngredient{
			{"Салат Романо", "1", "кочан"},
			{"Куриное филе", "300", "г"},
			{"Пармезан", "50", "г"},
			{"Белый хлеб", "3", "ломтика"},
			{"Чеснок", "2", "зубчика"},
			{"Майонез", "4", "ст.л."},
			{"Горчица", "1", "ч.л."},
			{"Лимонный сок", "1", "ст.л."},
			{"Оливковое масло", "3", "ст.л."},
		},
		Steps: []seedStep{
			{"Обжарьте куриное филе до готовности, нарежьте кубиками.", "https://images.unsplash.com/photo-1556910103-1c02745aae4d?fm=jpg&q=80&w=1080"},
			{"Нарежьте хлеб кубиками, смешайте с измельченным чесноком и оливковым маслом.", "https://images.unsplash.com/photo-1518977822534-7049a61ee0c2?fm=jpg&q=80&w=1080"},
			{"Обжарьте хлеб до золотистых сухариков.", "https://images.unsplash.com/photo-1556910103-1c02745aae4d?fm=jpg&q=80&w=1080"},
			{"Приготовьте соус: смешайте майонез, горчицу, лимонный сок и измельченный чеснок.", "https://images.unsplash.com/photo-1551185618-07fd482ff86e?fm=jpg&q=80&w=1080"},
			{"Порвите салат руками, добавьте курицу и сухарики.", "https://images.unsplash.com/photo-1550304943-4f24f54ddde9?fm=jpg&q=80&w=1080"},
			{"Заправьте соусом, посыпьте тертым пармезаном и подавайте.", "https://images.unsplash.com/photo-1550304943-4f24f54ddde9?fm=jpg&q=80&w=1080"},
		},
	},
	{
		Title:         "Шоколадный торт",
		Category:      "Десерт",
		CookTime:      60,
		Servings:      8,
		Calories:      450,
		Proteins:      6.5,
		Fats:          22.0,
		Carbohydrates: 58.0,
		Image:         "https://images.unsplash.com/photo-1606890737304-57a1ca8a5b62?fm=jpg&q=80&w=1080",
		Ingredients: []seedIngredient{
			{"Мука", "200", "г"},
			{"Сахар", "200", "г"},
			{"Какао-порошок", "50", "г"},
			{"Яйца", "3", "шт"},
			{"Молоко", "120", "мл"},
			{"Растительное масло", "80", "мл"},
			{"Разрыхлитель", "2", "ч.л."},
			{"Ванильный экстракт", "1", "ч.л."},
			{"Темный шоколад", "200", "г"},
			{"Сливки 33%", "200", "мл"},
		},
		Steps: []seedStep{
			{"Разогрейте духовку до 180°C. Смажьте форму маслом.", "https://images.unsplash.com/photo-1556910103-1c02745aae4d?fm=jpg&q=80&w=1080"},
			{"Смешайте муку, какао, разрыхлитель и половину сахара.", "https://images.unsplash.com/photo-1551185618-07fd482ff86e?fm=jpg&q=80&w=1080"},
			{"Взбейте яйца с оставшимся сахаром до пышности.", "https://images.unsplash.com/photo-1609501676725-7186f70a7d28?fm=jpg&q=80&w=1080"},
			{"Добавьте молоко, масло и ванильный экстракт к яйцам.", "https://images.unsplash.com/photo-1609501676725-7186f70a7d28?fm=jpg&q=80&w=1080"},
			{"Соедините жидкие и сухие ингредиенты, перемешайте до однородности.", "https://images.unsplash.com/photo-1551185618-07fd482ff86e?fm=jpg&q=80&w=1080"},
			{"Выпекайте 30-35 минут. Для глазури растопите шоколад со сливками, охладите и покройте остывший торт.", "https://images.unsplash.com/photo-1606890737304-57a1ca8a5b62?fm=jpg&q=80&w=1080"},
		},
	},
}
