// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Savrasov

package store

const (
	createUser = `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING user_id, username, password_hash, created_at;`

	findUserByUsername = `
		SELECT user_id, username, password_hash, created_at
		FROM users
		WHERE username = $1;`

	findUserByID = `
		SELECT user_id, username, password_hash, created_at
		FROM users
		WHERE user_id = $1;`

	listRecipes = `
		SELECT recipe_id, name, ingredients, instructions, image, category_id
		FROM recipes
		ORDER BY LOWER(name), recipe_id;`

	getRecipe = `
		SELECT recipe_id, name, ingredients, instructions, image, category_id
		FROM recipes
		WHERE recipe_id = $1;`

	createRecipe = `
		INSERT INTO recipes (name, ingredients, instructions, image, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING recipe_id, name, ingredients, instructions, image, category_id;`

	updateRecipe = `
		UPDATE recipes SET
			name         = $1,
			ingredients  = $2,
			instructions = $3,
			image        = $4,
			category_id  = $5
		WHERE recipe_id = $6
		RETURNING recipe_id, name, ingredients, instructions, image, category_id;`

	deleteRecipe = `DELETE FROM recipes WHERE recipe_id = $1;`

	createFreezerItem = `
		INSERT INTO freezer_items (name, quantity, category_id)
		VALUES ($1, $2, $3)
		RETURNING item_id;`

	deleteFreezerItem = `DELETE FROM freezer_items WHERE item_id = $1;`

	listCategories = `
		SELECT category_id, name
		FROM categories
		ORDER BY LOWER(name), category_id;`

	createCategory = `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING category_id, name;`

	deleteCategory = `DELETE FROM categories WHERE category_id = $1;`
)
