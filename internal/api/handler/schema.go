package handler

const statusSuccess = "success"

// errorResponse documents the envelope the API error handler renders for 4xx/5xx responses.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// --- Requests ---

type credentialsRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Password string `json:"password" validate:"required,max=72"`
}

type createPostRequest struct {
	Title    string `json:"title"     validate:"required,max=120"`
	AuthorID uint   `json:"author_id" validate:"required,gt=0"`
}

// --- Responses ---

type userResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type authResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message,omitempty"`
	User    userResponse `json:"user"`
	Token   string       `json:"token,omitempty"`
}

type postSummaryResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type createPostResponse struct {
	Status string              `json:"status"`
	Post   postSummaryResponse `json:"post"`
}

type postListItemResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Requested bool   `json:"requested"`
}

type listPostsResponse struct {
	Status string                 `json:"status"`
	Posts  []postListItemResponse `json:"posts"`
}

type messageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type profileBody struct {
	ID       uint                  `json:"id"`
	Username string                `json:"username"`
	Posts    []postSummaryResponse `json:"posts"`
}

type profileResponse struct {
	Status  string      `json:"status"`
	Profile profileBody `json:"profile"`
}
