package store

const (
	createUser = `INSERT INTO users (user_id, email, name, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, name, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, name, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, name, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createTask = `INSERT INTO tasks (user_id, title, description)
    VALUES ($1, $2, $3)
    RETURNING task_id, user_id, title, description, completed, created_at, updated_at;`

	findTaskByID = `SELECT task_id, user_id, title, description, completed, created_at, updated_at
    FROM tasks
    WHERE task_id = $1;`

	setTaskCompleted = `UPDATE tasks
    SET completed = $2, updated_at = NOW()
    WHERE task_id = $1
    RETURNING task_id, user_id, title, description, completed, created_at, updated_at;`

	deleteTask = `DELETE FROM tasks
    WHERE task_id = $1;`
)

// taskColumns is the column order shared by every task query's RETURNING and
// SELECT clauses.
var taskColumns = []string{"task_id", "user_id", "title", "description", "completed", "created_at", "updated_at"}
