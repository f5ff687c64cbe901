package client

// La messagerie n'est pas encore construite côté serveur : le schéma existe
// mais aucune route ne le sert. L'écran des discussions affiche en attendant
// la même liste d'exemple que l'application d'origine.

// ConversationPreview entrée de la liste des discussions
type ConversationPreview struct {
	ID              string `json:"id"`
	SupplierName    string `json:"supplier_name"`
	SupplierAvatar  string `json:"supplier_avatar"`
	LastMessage     string `json:"last_message"`
	LastMessageTime string `json:"last_message_time"`
	UnreadCount     int    `json:"unread_count"`
	ProductTitle    string `json:"product_title"`
}

// PlaceholderConversations données d'exemple, visibles uniquement par les
// comptes connectés (l'écran exige une session)
func PlaceholderConversations() []ConversationPreview {
	return []ConversationPreview{
		{
			ID:              "1",
			SupplierName:    "Jean Doe Electronics",
			SupplierAvatar:  "https://images.pexels.com/photos/3532544/pexels-photo-3532544.jpeg?auto=compress&cs=tinysrgb&w=400",
			LastMessage:     "Bonjour, êtes-vous intéressé par ce produit?",
			LastMessageTime: "15:30",
			UnreadCount:     2,
			ProductTitle:    "iPhone 14 Pro Max",
		},
		{
			ID:              "2",
			SupplierName:    "Marie Fashion Store",
			SupplierAvatar:  "https://images.pexels.com/photos/3532544/pexels-photo-3532544.jpeg?auto=compress&cs=tinysrgb&w=400",
			LastMessage:     "Merci pour votre commande!",
			LastMessageTime: "12:45",
			UnreadCount:     0,
			ProductTitle:    "Robe élégante",
		},
		{
			ID:              "3",
			SupplierName:    "Tech Solutions",
			SupplierAvatar:  "https://images.pexels.com/photos/3532544/pexels-photo-3532544.jpeg?auto=compress&cs=tinysrgb&w=400",
			LastMessage:     "Le produit est disponible en stock",
			LastMessageTime: "Hier",
			UnreadCount:     1,
			ProductTitle:    "Ordinateur portable",
		},
	}
}
