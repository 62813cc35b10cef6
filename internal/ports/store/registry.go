package store

// Registro estático entidad -> colección.
// El backend original derivaba el nombre por reflexión (clase en minúsculas);
// acá el mapeo es explícito para que agregar una entidad sea una decisión visible.
const (
	CollectionDog         = "dog"
	CollectionExercise    = "exercise"
	CollectionTask        = "task"
	CollectionProgressLog = "progresslog"
	CollectionLiveSession = "livesession"
)

// Collections devuelve las colecciones conocidas en orden estable.
func Collections() []string {
	return []string{
		CollectionDog,
		CollectionExercise,
		CollectionTask,
		CollectionProgressLog,
		CollectionLiveSession,
	}
}
