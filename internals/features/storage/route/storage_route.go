// internals/features/storage/route/storage_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	storageController "simbina_backend/internals/features/storage/controller"
)

// StorageRoutes: shim object-storage lokal (tanpa auth, mengikuti UI lama)
func StorageRoutes(public fiber.Router) {
	ctrl := storageController.NewStorageController()

	storage := public.Group("/storage")
	storage.Post("/upload", ctrl.Upload)
	storage.Get("/serve", ctrl.Serve)
	storage.Delete("/manage", ctrl.Manage)
}
