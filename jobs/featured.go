package jobs

import (
	"log"

	"github.com/robfig/cron/v3"

	"tradehub/controllers"
)

// StartScheduler rafraîchit périodiquement le cache du fil d'accueil pour
// que les visiteurs ne paient pas la requête Mongo à chaque ouverture
func StartScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@every 10m", controllers.RefreshFeaturedCache)
	if err != nil {
		log.Println("Failed to schedule featured refresh:", err)
		return c
	}

	c.Start()

	// premier remplissage sans attendre le premier tick
	go controllers.RefreshFeaturedCache()

	return c
}
