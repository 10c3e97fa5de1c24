package user

type registerInput struct {
	Body registerRequest
}

type registerRequest struct {
	Username string `json:"username" minLength:"3" maxLength:"32" doc:"Уникальное имя пользователя"`
	Password string `json:"password" minLength:"8" doc:"Пароль, хранится только как хэш"`
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID     int    `json:"userId"`
	Status string `json:"status"`
}
