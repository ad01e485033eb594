package types

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateArticleRequest represents the request body for creating an article
type CreateArticleRequest struct {
	Title      string  `json:"title" binding:"required,max=30"`
	Content    string  `json:"content" binding:"required,max=500"`
	Recipe     string  `json:"recipe" binding:"required,max=500"`
	ImageURL   *string `json:"image_url"`
	CategoryID *string `json:"category_id"`
}

// UpdateArticleRequest represents the request body for updating an article.
// Only fields present in the patch are changed.
type UpdateArticleRequest struct {
	Title      *string `json:"title" binding:"omitempty,max=30"`
	Content    *string `json:"content" binding:"omitempty,max=500"`
	Recipe     *string `json:"recipe" binding:"omitempty,max=500"`
	ImageURL   *string `json:"image_url"`
	CategoryID *string `json:"category_id"`
}

// AddRecipeIngredientRequest represents the request body for attaching an
// ingredient to an article's recipe. Quantity and unit are required; there
// is no "unspecified" sentinel.
type AddRecipeIngredientRequest struct {
	IngredientName string `json:"ingredient_name" binding:"required,max=100"`
	Quantity       int    `json:"quantity" binding:"required"`
	Unit           string `json:"unit" binding:"required,max=100"`
}

// UpdateRecipeIngredientRequest is a partial update of a recipe-ingredient
// link. A new ingredient name re-resolves against the catalog.
type UpdateRecipeIngredientRequest struct {
	IngredientName *string `json:"ingredient_name" binding:"omitempty,max=100"`
	Quantity       *int    `json:"quantity"`
	Unit           *string `json:"unit" binding:"omitempty,max=100"`
}

// CreateCommentRequest represents the request body for commenting
type CreateCommentRequest struct {
	Body string `json:"body" binding:"required,max=300"`
}

// CreateIngredientRequest represents the request body for registering an
// ingredient directly (outside of recipe composition)
type CreateIngredientRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Info string `json:"info" binding:"max=100"`
}

// UpdateIngredientRequest updates an ingredient's free-text info
type UpdateIngredientRequest struct {
	Info string `json:"info" binding:"max=100"`
}

// AddIngredientLinkRequest attaches a purchase/reference link to an ingredient
type AddIngredientLinkRequest struct {
	URL      string `json:"url" binding:"required,url"`
	ImageURL string `json:"image_url" binding:"omitempty,url"`
}

// AddFridgeItemRequest represents the request body for adding to the fridge
type AddFridgeItemRequest struct {
	IngredientName string `json:"ingredient_name" binding:"required,max=100"`
}
