package handlers

import (
	"net/http"

	"blog_service/internal/service"

	"github.com/gin-gonic/gin"
)

// Response messages for the user endpoints.
const (
	msgUserCreated = "user created successfully"
	msgUserUpdated = "user updated successfully"
	msgUserDeleted = "user deleted successfully"
	msgLoginOK     = "login successful"

	errUserFieldsRequired  = "username, email and password are required"
	errLoginFieldsRequired = "username and password are required"
	// One message for both unknown username and wrong password,
	// so clients cannot enumerate accounts.
	errInvalidCredentials = "invalid username or password"

	errCreateUser = "failed to create user"
	errLoginUser  = "failed to log in"
	errGetUser    = "failed to fetch user"
	errListUsers  = "failed to fetch users"
	errUpdateUser = "failed to update user"
	errDeleteUser = "failed to delete user"
)

type createUserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// updateUserInput names every recognized profile field. Absent fields stay
// untouched; present fields replace the stored value.
type updateUserInput struct {
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	Picture     *string `json:"picture"`
	Description *string `json:"description"`
	Firstname   *string `json:"firstname"`
	Surname     *string `json:"surname"`
}

// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  createUserInput  true  "Account payload"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /users [post]
func (h *Handler) createUser(c *gin.Context) {
	var input createUserInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	if input.Username == "" || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": errUserFieldsRequired})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.services.Authorization.SignUp(ctx, input.Username, input.Email, input.Password); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateUser, "user_create_failed", err, "username", input.Username)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgUserCreated})
}

// @Summary      Log in
// @Description  Confirms credential validity; no session or token is issued.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  loginInput  true  "Credentials"
// @Success      200   {object}  map[string]interface{}  "message, userId"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	if input.Username == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": errLoginFieldsRequired})
		return
	}

	ctx := c.Request.Context()
	userID, err := h.services.Authorization.Login(ctx, input.Username, input.Password)
	if err != nil {
		if service.IsCredentialError(err) {
			if h.log != nil {
				h.log.Infow("login_rejected", "username", input.Username)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"message": errInvalidCredentials})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errLoginUser, "login_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgLoginOK, "userId": userID})
}

// @Summary      Get one user
// @Description  Returns an empty object when no user matches, not a 404.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  models.User
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	id, ok := h.idParamOrBadRequest(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	u, err := h.services.Users.GetByID(ctx, id)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetUser, "user_get_failed", err, "id", id)
		return
	}
	if u == nil {
		// Callers treat "no such user" and "empty profile" identically.
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.User
// @Failure      500  {object}  map[string]string
// @Router       /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	ctx := c.Request.Context()
	users, err := h.services.Users.List(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListUsers, "user_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "User id"
// @Param        body  body  updateUserInput  true  "Fields to replace"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	id, ok := h.idParamOrBadRequest(c)
	if !ok {
		return
	}
	var input updateUserInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	upd := service.UserUpdate{
		Username:    input.Username,
		Email:       input.Email,
		Picture:     input.Picture,
		Description: input.Description,
		Firstname:   input.Firstname,
		Surname:     input.Surname,
	}

	ctx := c.Request.Context()
	if err := h.services.Users.Update(ctx, id, upd); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateUser, "user_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgUserUpdated})
}

// @Summary      Delete user
// @Description  Succeeds whether or not the row existed.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := h.idParamOrBadRequest(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.services.Users.Delete(ctx, id); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteUser, "user_delete_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgUserDeleted})
}
