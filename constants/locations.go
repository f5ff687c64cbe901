package constants

// Données de référence fixes : pays francophones d'Afrique et leurs
// principales villes, plus la liste des catégories de produits.
// Chargées au démarrage, jamais modifiées à l'exécution.

var AfricanLocations = map[string][]string{
	"Algérie": {
		"Alger", "Oran", "Constantine", "Annaba", "Blida", "Batna", "Djelfa", "Sétif",
	},
	"Bénin": {
		"Cotonou", "Porto-Novo", "Parakou", "Djougou", "Bohicon", "Kandi", "Ouidah", "Abomey",
	},
	"Burkina Faso": {
		"Ouagadougou", "Bobo-Dioulasso", "Koudougou", "Ouahigouya", "Banfora", "Kaya", "Tenkodogo",
	},
	"Burundi": {
		"Bujumbura", "Gitega", "Muyinga", "Ruyigi", "Kayanza", "Muramvya", "Rutana",
	},
	"Cameroun": {
		"Douala", "Yaoundé", "Garoua", "Maroua", "Bamenda", "Bafoussam", "Ngaoundéré",
	},
	"République Centrafricaine": {
		"Bangui", "Berbérati", "Carnot", "Bambari", "Bouar", "Bossangoa", "Bria",
	},
	"Tchad": {
		"N'Djamena", "Moundou", "Sarh", "Abéché", "Kélo", "Koumra", "Pala",
	},
	"Comores": {
		"Moroni", "Mutsamudu", "Fomboni", "Domoni", "Sima", "Mirontsi",
	},
	"République du Congo": {
		"Brazzaville", "Pointe-Noire", "Dolisie", "Nkayi", "Ouesso", "Madingou", "Owando",
	},
	"République Démocratique du Congo": {
		"Kinshasa", "Lubumbashi", "Mbuji-Mayi", "Kisangani", "Kananga", "Likasi", "Kolwezi",
		"Tshikapa", "Beni", "Bukavu", "Mwene-Ditu", "Kikwit", "Matadi", "Uvira", "Butembo",
	},
	"Côte d'Ivoire": {
		"Abidjan", "Bouaké", "Daloa", "Yamoussoukro", "San-Pédro", "Korhogo", "Man",
	},
	"Djibouti": {
		"Djibouti", "Ali Sabieh", "Dikhil", "Tadjourah", "Obock", "Arta",
	},
	"Gabon": {
		"Libreville", "Port-Gentil", "Franceville", "Oyem", "Moanda", "Mouila", "Lambaréné",
	},
	"Guinée": {
		"Conakry", "Nzérékoré", "Kankan", "Kindia", "Labe", "Mamou", "Boké",
	},
	"Guinée équatoriale": {
		"Malabo", "Bata", "Ebebiyin", "Aconibe", "Añisoc", "Luba",
	},
	"Madagascar": {
		"Antananarivo", "Toamasina", "Antsirabe", "Fianarantsoa", "Mahajanga", "Toliara", "Antsiranana",
	},
	"Mali": {
		"Bamako", "Sikasso", "Mopti", "Koutiala", "Ségou", "Kayes", "Gao", "Tombouctou",
	},
	"Maroc": {
		"Casablanca", "Rabat", "Fès", "Marrakech", "Agadir", "Tanger", "Meknès", "Oujda",
	},
	"Maurice": {
		"Port Louis", "Beau Bassin-Rose Hill", "Vacoas-Phoenix", "Curepipe", "Quatre Bornes",
	},
	"Mauritanie": {
		"Nouakchott", "Nouadhibou", "Néma", "Kaédi", "Zouerate", "Rosso", "Atar",
	},
	"Niger": {
		"Niamey", "Zinder", "Maradi", "Agadez", "Tahoua", "Dosso", "Tillabéri",
	},
	"Rwanda": {
		"Kigali", "Butare", "Gitarama", "Ruhengeri", "Gisenyi", "Byumba", "Cyangugu",
	},
	"Sénégal": {
		"Dakar", "Thiès", "Kaolack", "Ziguinchor", "Saint-Louis", "Diourbel", "Tambacounda",
	},
	"Seychelles": {
		"Victoria", "Anse Boileau", "Beau Vallon", "Takamaka", "Port Glaud",
	},
	"Togo": {
		"Lomé", "Sokodé", "Kara", "Kpalimé", "Atakpamé", "Dapaong", "Tsévié",
	},
	"Tunisie": {
		"Tunis", "Sfax", "Sousse", "Kairouan", "Bizerte", "Gabès", "Ariana", "Gafsa",
	},
}

var ProductCategories = []string{
	"Électronique",
	"Mode & Vêtements",
	"Maison & Jardin",
	"Automobile",
	"Sport & Loisirs",
	"Santé & Beauté",
	"Alimentation",
	"Livres & Média",
	"Jouets & Enfants",
	"Bijoux & Accessoires",
	"Artisanat Local",
	"Agriculture",
	"Construction",
	"Services",
}

// IsValidCategory vérifie qu'une catégorie appartient à la liste fixe.
func IsValidCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidCountry vérifie qu'un pays est couvert par la plateforme.
func IsValidCountry(country string) bool {
	_, ok := AfricanLocations[country]
	return ok
}

// CitiesFor retourne les villes d'un pays, nil si le pays est inconnu.
func CitiesFor(country string) []string {
	return AfricanLocations[country]
}

// IsValidCity vérifie qu'une ville appartient bien au pays indiqué.
func IsValidCity(country, city string) bool {
	for _, c := range AfricanLocations[country] {
		if c == city {
			return true
		}
	}
	return false
}
