package resolver

const helpText = `🤖 **ASSISTENTE DE INVENTÁRIO DE SWITCHES - AJUDA**

💡 **PERGUNTE DE FORMA NATURAL:**

🔢 CONTAGENS:
• "Quantos switches temos?"
• "Quantos switches ativos?"
• "Quantos switches Cisco na sede?"

💰 VALORES:
• "Qual o valor total dos equipamentos?"
• "Valor total dos switches em manutenção"
• "Switches com valor acima de 10000"

🏭 FABRICANTES:
• "Switches Cisco"
• "Equipamentos HP ativos"
• "Distribuição por fabricante"

📍 LOCALIZAÇÃO:
• "Switches na sede"
• "Equipamentos na filial"
• "Mostre switches ativos na matriz"

⚠️ GARANTIA:
• "Garantias próximas do vencimento"
• "Equipamentos com garantia expirando"

🔌 PORTAS:
• "Switches com portas livres"

📊 RELATÓRIOS:
• "estatísticas" ou "dashboard"

🌐 Também em inglês: "how many active switches?", "cisco switches by vendor", "stats".

ℹ️ Listas com mais de 10 switches mostram apenas o total; refine a pergunta para ver os registros.`
